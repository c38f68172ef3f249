package dto

import "property_mgmt_v1/internal/model"

// RoleRequest 创建/更新角色
type RoleRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// RoleResponse 角色 + 持有该角色的用户数
type RoleResponse struct {
	model.Role
	UserCount int64 `json:"userCount"`
}
