package model

import "time"

// RepairStatus 工单状态
type RepairStatus string

const (
	RepairPending    RepairStatus = "PENDING"
	RepairInProgress RepairStatus = "IN_PROGRESS"
	RepairCompleted  RepairStatus = "COMPLETED"
	RepairCancelled  RepairStatus = "CANCELLED"
)

// RepairPriority 工单优先级
type RepairPriority string

const (
	PriorityLow    RepairPriority = "LOW"
	PriorityNormal RepairPriority = "NORMAL"
	PriorityHigh   RepairPriority = "HIGH"
	PriorityUrgent RepairPriority = "URGENT"
)

// RepairOrder 报修工单
type RepairOrder struct {
	BaseModel
	OrderNumber      string         `gorm:"size:30;uniqueIndex;not null" json:"orderNumber"`
	OwnerName        string         `gorm:"size:50;not null" json:"ownerName"`
	Phone            string         `gorm:"size:20;not null" json:"phone"`
	Type             string         `gorm:"size:50;not null" json:"type"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Building         string         `gorm:"size:50;not null" json:"building"`
	Unit             string         `gorm:"size:30;not null" json:"unit"`
	RoomNumber       string         `gorm:"size:30;not null" json:"roomNumber"`
	Priority         RepairPriority `gorm:"size:20;not null;default:NORMAL" json:"priority"`
	Status           RepairStatus   `gorm:"size:20;not null;default:PENDING" json:"status"`
	AssignedWorker   string         `gorm:"size:50" json:"assignedWorker"`
	StartedAt        *time.Time     `json:"startedAt"`
	FinishedAt       *time.Time     `json:"finishedAt"`
	EvaluationScore  *int           `json:"evaluationScore"`
	EvaluationRemark string         `gorm:"type:text" json:"evaluationRemark"`
}

func (RepairOrder) TableName() string {
	return "repair_orders"
}
