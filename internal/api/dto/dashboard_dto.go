package dto

import "github.com/shopspring/decimal"

// DashboardSummary 工作台汇总
type DashboardSummary struct {
	TotalResidents    int64           `json:"totalResidents"`
	PendingRepairs    int64           `json:"pendingRepairs"`
	PendingComplaints int64           `json:"pendingComplaints"`
	MonthlyIncome     decimal.Decimal `json:"monthlyIncome"`
	OccupancyRate     float64         `json:"occupancyRate"`
	PaymentRate       float64         `json:"paymentRate"`
}
