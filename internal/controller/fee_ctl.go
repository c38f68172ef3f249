package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
)

type FeeController struct {
	feeService *service.FeeService
}

func NewFeeController(s *service.FeeService) *FeeController {
	return &FeeController{feeService: s}
}

// ==================== 账单 ====================

// ListBills
// @Summary 账单列表
// @Description 可按业主姓名模糊过滤
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Param ownerName query string false "业主姓名"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/bills [get]
func (ctrl *FeeController) ListBills(c *gin.Context) {
	bills, err := ctrl.feeService.FindAllBills(c.Request.Context(), c.Query("ownerName"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(bills))
}

// GetBill
// @Summary 账单详情
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/bills/{id} [get]
func (ctrl *FeeController) GetBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bill, err := ctrl.feeService.FindBillByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(bill))
}

// CreateBill
// @Summary 手工创建账单
// @Tags Fee (收费模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BillRequest true "账单信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/bills [post]
func (ctrl *FeeController) CreateBill(c *gin.Context) {
	var req dto.BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	bill, err := ctrl.feeService.CreateBill(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", bill))
}

// GenerateBills
// @Summary 按收费项目批量生成账单
// @Description 为全部已入住住户生成指定账期的账单，已存在的跳过
// @Tags Fee (收费模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收费项目 ID"
// @Param request body dto.GenerateBillsRequest true "账期"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/items/{id}/generate-bills [post]
func (ctrl *FeeController) GenerateBills(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.GenerateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "账期不能为空")
		return
	}

	bills, err := ctrl.feeService.GenerateBillsFromFeeItem(c.Request.Context(), id, req.BillingPeriod)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("生成成功", bills))
}

// ==================== 缴费 ====================

// ListPayments
// @Summary 缴费记录
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/payments [get]
func (ctrl *FeeController) ListPayments(c *gin.Context) {
	payments, err := ctrl.feeService.FindAllPayments(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(payments))
}

// CreatePayment
// @Summary 缴费
// @Description 对账单发起足额缴费，成功后账单置为已缴
// @Tags Fee (收费模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PaymentRequest true "缴费请求"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/payments [post]
func (ctrl *FeeController) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "账单 ID 和支付方式不能为空")
		return
	}

	payment, err := ctrl.feeService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("缴费成功", payment))
}

// ==================== 收费项目 ====================

// ListFeeItems
// @Summary 收费项目列表
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/items [get]
func (ctrl *FeeController) ListFeeItems(c *gin.Context) {
	items, err := ctrl.feeService.FindAllFeeItems(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(items))
}

// CreateFeeItem
// @Summary 新建收费项目
// @Tags Fee (收费模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeeItemRequest true "收费项目"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/items [post]
func (ctrl *FeeController) CreateFeeItem(c *gin.Context) {
	var req dto.FeeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	item, err := ctrl.feeService.CreateFeeItem(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", item))
}

// UpdateFeeItem
// @Summary 更新收费项目
// @Tags Fee (收费模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收费项目 ID"
// @Param request body dto.FeeItemRequest true "收费项目"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/items/{id} [put]
func (ctrl *FeeController) UpdateFeeItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.FeeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	item, err := ctrl.feeService.UpdateFeeItem(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", item))
}

// DeleteFeeItem
// @Summary 删除收费项目
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "收费项目 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/items/{id} [delete]
func (ctrl *FeeController) DeleteFeeItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.feeService.DeleteFeeItem(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}

// ToggleFeeItemStatus
// @Summary 启用/停用收费项目
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "收费项目 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/items/{id}/toggle-status [put]
func (ctrl *FeeController) ToggleFeeItemStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := ctrl.feeService.ToggleFeeItemStatus(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(item))
}

// ==================== 统计 ====================

// Statistics
// @Summary 费用统计
// @Description 本月应收/实收、欠费总额与缴费率
// @Tags Fee (收费模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/fees/statistics [get]
func (ctrl *FeeController) Statistics(c *gin.Context) {
	stats, err := ctrl.feeService.GetStatistics(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(stats))
}
