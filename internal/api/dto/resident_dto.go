package dto

// ResidentRequest 住户创建/更新请求
type ResidentRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Building   string `json:"building" binding:"required"`
	Unit       string `json:"unit" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	Area       string `json:"area"`
	Status     string `json:"status" binding:"omitempty,oneof=OCCUPIED VACANT MOVING_OUT RENTED"`
	MoveInDate string `json:"moveInDate"` // 格式 2006-01-02，空则取当天
}

// ResidentQuery 住户列表查询参数
type ResidentQuery struct {
	Name     string `form:"name"`
	Building string `form:"building"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}
