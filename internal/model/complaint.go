package model

import "time"

// ComplaintStatus 投诉状态
type ComplaintStatus string

const (
	ComplaintReceived   ComplaintStatus = "RECEIVED"
	ComplaintProcessing ComplaintStatus = "PROCESSING"
	ComplaintCompleted  ComplaintStatus = "COMPLETED"
	ComplaintClosed     ComplaintStatus = "CLOSED"
)

// Complaint 投诉记录
type Complaint struct {
	BaseModel
	OwnerName        string          `gorm:"size:50;not null" json:"ownerName"`
	Phone            string          `gorm:"size:20;not null" json:"phone"`
	Type             string          `gorm:"size:50;not null" json:"type"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	Status           ComplaintStatus `gorm:"size:20;not null;default:RECEIVED" json:"status"`
	ProcessedBy      string          `gorm:"size:50" json:"processedBy"`
	Reply            string          `gorm:"type:text" json:"reply"`
	FeedbackDeadline *time.Time      `json:"feedbackDeadline"`
}

func (Complaint) TableName() string {
	return "complaints"
}
