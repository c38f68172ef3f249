package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
)

type RoleController struct {
	roleService *service.RoleService
}

func NewRoleController(s *service.RoleService) *RoleController {
	return &RoleController{roleService: s}
}

// List
// @Summary 角色列表
// @Description 返回全部角色及各自的用户数
// @Tags Role (角色模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/roles [get]
func (ctrl *RoleController) List(c *gin.Context) {
	roles, err := ctrl.roleService.GetAllRoles(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(roles))
}

// Available
// @Summary 可分配角色
// @Description 新建用户时可选的角色，仅普通用户和工程人员
// @Tags Role (角色模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/roles/available [get]
func (ctrl *RoleController) Available(c *gin.Context) {
	roles, err := ctrl.roleService.GetAvailableRoles(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(roles))
}

// Get
// @Summary 角色详情
// @Tags Role (角色模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "角色 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/roles/{id} [get]
func (ctrl *RoleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	role, err := ctrl.roleService.GetRoleByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(role))
}

// Create
// @Summary 新建角色
// @Tags Role (角色模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoleRequest true "角色信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/roles [post]
func (ctrl *RoleController) Create(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "角色编码和名称不能为空")
		return
	}

	role, err := ctrl.roleService.CreateRole(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", role))
}

// Update
// @Summary 更新角色
// @Description 系统预设角色（ADMIN/USER/ENGINEER）不允许修改
// @Tags Role (角色模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "角色 ID"
// @Param request body dto.RoleRequest true "角色信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/roles/{id} [put]
func (ctrl *RoleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "角色编码和名称不能为空")
		return
	}

	role, err := ctrl.roleService.UpdateRole(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", role))
}

// Delete
// @Summary 删除角色
// @Description 预设角色与仍有用户的角色不允许删除
// @Tags Role (角色模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "角色 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/roles/{id} [delete]
func (ctrl *RoleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.roleService.DeleteRole(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
