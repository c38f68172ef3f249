package logger

import (
	"log"

	"go.uber.org/zap"
)

// L 全局日志器，Init 之前为 no-op
var L = zap.NewNop().Sugar()

// Init 初始化 zap 日志器
// mode: debug 使用开发配置（彩色、可读），其余使用生产配置（JSON）
func Init(mode string) *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "debug" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	L = l.Sugar()
	return L
}
