package dto

// UserRequest 创建用户
type UserRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	ResidentID int64  `json:"residentId" binding:"required"`
	RoleID     int64  `json:"roleId" binding:"required"`
	Active     *bool  `json:"active"`
}

// UpdateUserRequest 更新用户
// residentId / roleId 为空时保持原值
type UpdateUserRequest struct {
	Username   string `json:"username" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	ResidentID *int64 `json:"residentId"`
	RoleID     *int64 `json:"roleId"`
	Active     *bool  `json:"active"`
}

// ResetPasswordRequest 重置密码
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
