package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{userService: s}
}

// List
// @Summary 用户列表
// @Description 按用户名/姓名关键字分页检索
// @Tags User (用户模块)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "关键字"
// @Param page query int false "页码，默认 1"
// @Param pageSize query int false "每页条数，默认 10"
// @Success 200 {object} dto.ApiResponse
// @Router /api/users [get]
func (ctrl *UserController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	users, total, err := ctrl.userService.GetAllUsers(c.Request.Context(), repository.UserFilter{
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.PageResult{List: users, Total: total, Page: page}))
}

// Create
// @Summary 新建用户
// @Description 创建用户并绑定住户档案与角色，只允许 USER / ENGINEER
// @Tags User (用户模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserRequest true "用户信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/users [post]
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	user, err := ctrl.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", user))
}

// Update
// @Summary 更新用户
// @Tags User (用户模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 ID"
// @Param request body dto.UpdateUserRequest true "用户信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/users/{id} [put]
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	user, err := ctrl.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", user))
}

// Delete
// @Summary 删除用户
// @Tags User (用户模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/users/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.userService.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}

// ToggleStatus
// @Summary 启用/停用用户
// @Tags User (用户模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/users/{id}/toggle-status [put]
func (ctrl *UserController) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := ctrl.userService.ToggleUserStatus(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(user))
}

// ResetPassword
// @Summary 重置密码
// @Tags User (用户模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 ID"
// @Param request body dto.ResetPasswordRequest true "新密码"
// @Success 200 {object} dto.ApiResponse
// @Router /api/users/{id}/reset-password [put]
func (ctrl *UserController) ResetPassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "新密码至少 6 位")
		return
	}

	if err := ctrl.userService.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("密码已重置", nil))
}
