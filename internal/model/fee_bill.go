package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus 账单状态
type BillStatus string

const (
	BillPending BillStatus = "PENDING" // 待缴费
	BillPaid    BillStatus = "PAID"    // 已缴费
	BillOverdue BillStatus = "OVERDUE" // 已逾期
)

// FeeBill 费用账单
// 业主/楼栋信息为冗余文本而非外键：住户档案变更或删除后历史账单必须保持原样。
// 因此改住户姓名不会回溯修改既有账单，去重也只能按文本三元组匹配。
// (type, billing_period, owner_name) 上的唯一索引把并发生成的竞态收敛为
// 可捕获的唯一约束冲突。
type FeeBill struct {
	BaseModel
	BillNumber    string          `gorm:"size:30;uniqueIndex;not null" json:"billNumber"`
	OwnerName     string          `gorm:"size:50;not null;uniqueIndex:idx_bill_dedup,priority:3" json:"ownerName"`
	Building      string          `gorm:"size:100;not null" json:"building"`
	Type          string          `gorm:"size:30;not null;uniqueIndex:idx_bill_dedup,priority:1" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	BillingPeriod string          `gorm:"size:20;not null;uniqueIndex:idx_bill_dedup,priority:2" json:"billingPeriod"`
	Status        BillStatus      `gorm:"size:20;not null;default:PENDING" json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
	PayMethod     string          `gorm:"size:30" json:"payMethod"`
}

func (FeeBill) TableName() string {
	return "fee_bills"
}
