package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
)

type ComplaintController struct {
	complaintService *service.ComplaintService
}

func NewComplaintController(s *service.ComplaintService) *ComplaintController {
	return &ComplaintController{complaintService: s}
}

// List
// @Summary 投诉列表
// @Tags Complaint (投诉模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/complaints [get]
func (ctrl *ComplaintController) List(c *gin.Context) {
	complaints, err := ctrl.complaintService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(complaints))
}

// Get
// @Summary 投诉详情
// @Tags Complaint (投诉模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "投诉 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/complaints/{id} [get]
func (ctrl *ComplaintController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	complaint, err := ctrl.complaintService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(complaint))
}

// Create
// @Summary 登记投诉
// @Description 初始状态 RECEIVED，反馈期限为 24 小时后
// @Tags Complaint (投诉模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ComplaintRequest true "投诉信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/complaints [post]
func (ctrl *ComplaintController) Create(c *gin.Context) {
	var req dto.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	complaint, err := ctrl.complaintService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("投诉已登记", complaint))
}

// UpdateStatus
// @Summary 投诉处理
// @Tags Complaint (投诉模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "投诉 ID"
// @Param request body dto.ComplaintUpdateRequest true "处理信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/complaints/{id}/status [put]
func (ctrl *ComplaintController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ComplaintUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "状态不合法")
		return
	}

	complaint, err := ctrl.complaintService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", complaint))
}
