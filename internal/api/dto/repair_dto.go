package dto

// RepairOrderRequest 报修工单提交请求
type RepairOrderRequest struct {
	OwnerName   string `json:"ownerName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Building    string `json:"building" binding:"required"`
	Unit        string `json:"unit" binding:"required"`
	RoomNumber  string `json:"roomNumber" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
}

// RepairStatusUpdateRequest 工单流转请求，字段均可选
type RepairStatusUpdateRequest struct {
	Status           string  `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	AssignedWorker   *string `json:"assignedWorker"`
	EvaluationScore  *int    `json:"evaluationScore" binding:"omitempty,min=1,max=5"`
	EvaluationRemark string  `json:"evaluationRemark"`
}
