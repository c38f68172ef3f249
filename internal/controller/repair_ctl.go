package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
)

type RepairController struct {
	repairService *service.RepairService
}

func NewRepairController(s *service.RepairService) *RepairController {
	return &RepairController{repairService: s}
}

// List
// @Summary 工单列表
// @Tags Repair (报修模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/repairs [get]
func (ctrl *RepairController) List(c *gin.Context) {
	orders, err := ctrl.repairService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(orders))
}

// Get
// @Summary 工单详情
// @Tags Repair (报修模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "工单 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/repairs/{id} [get]
func (ctrl *RepairController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := ctrl.repairService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(order))
}

// Create
// @Summary 提交报修
// @Description 自动生成工单号，初始状态 PENDING
// @Tags Repair (报修模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RepairOrderRequest true "报修信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/repairs [post]
func (ctrl *RepairController) Create(c *gin.Context) {
	var req dto.RepairOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	order, err := ctrl.repairService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("报修已提交", order))
}

// UpdateStatus
// @Summary 工单流转
// @Description 状态流转、派单、评价，开工/完工时间自动记录
// @Tags Repair (报修模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "工单 ID"
// @Param request body dto.RepairStatusUpdateRequest true "流转信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/repairs/{id}/status [put]
func (ctrl *RepairController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RepairStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不合法: "+err.Error())
		return
	}

	order, err := ctrl.repairService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", order))
}
