package model

import "github.com/shopspring/decimal"

// PaymentStatus 缴费状态
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
	PaymentPending PaymentStatus = "PENDING"
)

// Payment 缴费记录
// bill_id 为软引用，不做级联：账单删除后历史缴费记录保留
type Payment struct {
	BaseModel
	OrderNumber string          `gorm:"size:30;uniqueIndex;not null" json:"orderNumber"`
	BillID      int64           `gorm:"index" json:"billId"`
	OwnerName   string          `gorm:"size:50;not null" json:"ownerName"`
	Building    string          `gorm:"size:100;not null" json:"building"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type        string          `gorm:"size:30;not null" json:"type"`
	PayMethod   string          `gorm:"size:30;not null" json:"payMethod"`
	Status      PaymentStatus   `gorm:"size:20;not null;default:SUCCESS" json:"status"`
}

func (Payment) TableName() string {
	return "payments"
}
