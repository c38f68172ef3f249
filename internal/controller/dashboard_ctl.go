package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(s *service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: s}
}

// Summary
// @Summary 工作台汇总
// @Description 住户总数、待处理工单/投诉、本月收入、入住率与缴费率
// @Tags Dashboard (工作台)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/dashboard/summary [get]
func (ctrl *DashboardController) Summary(c *gin.Context) {
	summary, err := ctrl.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(summary))
}
