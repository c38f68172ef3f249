package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/middleware"
	"property_mgmt_v1/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{authService: s}
}

// Login
// @Summary 登录
// @Description 用户名密码登录，签发 JWT
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse "参数错误"
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "用户名和密码不能为空")
		return
	}

	resp, err := ctrl.authService.Authenticate(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("登录成功", resp))
}

// Me
// @Summary 当前用户
// @Description 按令牌返回当前登录用户档案
// @Tags Auth (认证模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Failure 401 {object} dto.ApiResponse
// @Router /api/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	username := middleware.GetUsername(c)
	if username == "" {
		c.JSON(http.StatusUnauthorized, dto.Fail("未登录"))
		return
	}

	user, err := ctrl.authService.CurrentUser(c.Request.Context(), username)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(user))
}
