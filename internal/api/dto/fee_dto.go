package dto

import "github.com/shopspring/decimal"

// BillRequest 手工创建账单
type BillRequest struct {
	OwnerName     string          `json:"ownerName" binding:"required"`
	Building      string          `json:"building" binding:"required"`
	Type          string          `json:"type" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	BillingPeriod string          `json:"billingPeriod" binding:"required"`
}

// FeeItemRequest 创建/更新收费项目
type FeeItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
}

// PaymentRequest 缴费
// 不接受金额入参：足额缴费，金额始终取账单金额
type PaymentRequest struct {
	BillID    int64  `json:"billId" binding:"required"`
	PayMethod string `json:"payMethod" binding:"required"`
}

// GenerateBillsRequest 批量生成账单
type GenerateBillsRequest struct {
	BillingPeriod string `json:"billingPeriod" binding:"required"`
}

// FeeStatistics 费用统计
// monthlyReceived 按缴费事件时间统计，可能与按账期统计的本月已缴口径不一致，
// 两者的差异是有意保留的
type FeeStatistics struct {
	MonthlyReceivable decimal.Decimal `json:"monthlyReceivable"`
	MonthlyReceived   decimal.Decimal `json:"monthlyReceived"`
	TotalArrears      decimal.Decimal `json:"totalArrears"`
	PaymentRate       float64         `json:"paymentRate"`
}
