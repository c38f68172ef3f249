package dto

// ComplaintRequest 投诉登记请求
type ComplaintRequest struct {
	OwnerName   string `json:"ownerName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ComplaintUpdateRequest 投诉处理请求
type ComplaintUpdateRequest struct {
	Status      string  `json:"status" binding:"required,oneof=RECEIVED PROCESSING COMPLETED CLOSED"`
	ProcessedBy *string `json:"processedBy"`
	Reply       *string `json:"reply"`
}
