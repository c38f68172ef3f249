package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Seed     SeedConfig     `mapstructure:"seed"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	ExpirationMinutes int64  `mapstructure:"expiration-minutes"`
}

type SeedConfig struct {
	AdminPassword string `mapstructure:"admin-password"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow-origins"`
}

// Load 加载配置
// 优先级：环境变量 (PROPERTY_ 前缀) > config.yaml > 默认值
func Load(path string) *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	// 默认值
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.dsn", "host=localhost user=property password=property dbname=property_mgmt port=5432 sslmode=disable TimeZone=Asia/Shanghai")
	v.SetDefault("jwt.secret", "property-mgmt-secret-key-change-in-production")
	v.SetDefault("jwt.expiration-minutes", 120)
	v.SetDefault("seed.admin-password", "admin123")
	v.SetDefault("cors.allow-origins", []string{"http://localhost:5173"})

	v.SetEnvPrefix("PROPERTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件时使用默认值 + 环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("读取配置文件失败: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("解析配置失败: %v", err)
	}
	return &cfg
}
