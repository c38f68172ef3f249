package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 单号格式沿用既有数据：
//   账单号   B20251001 + 5 位大写随机段
//   工单号   R20251001 + 5 位大写随机段
//   缴费单号 20251001153045 + 3 位随机数字

func generateBillNumber() string {
	return "B" + time.Now().Format("20060102") + randomSuffix()
}

func generateRepairNumber() string {
	return "R" + time.Now().Format("20060102") + randomSuffix()
}

func generatePaymentOrderNumber() string {
	return time.Now().Format("20060102150405") + fmt.Sprintf("%03d", rand.IntN(1000))
}

func randomSuffix() string {
	return strings.ToUpper(uuid.NewString()[:5])
}
