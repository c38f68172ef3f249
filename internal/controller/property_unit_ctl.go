package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/service"
)

type PropertyUnitController struct {
	unitService *service.PropertyUnitService
}

func NewPropertyUnitController(s *service.PropertyUnitService) *PropertyUnitController {
	return &PropertyUnitController{unitService: s}
}

// List
// @Summary 房屋台账
// @Description 关键字匹配楼栋/房号/业主，可叠加状态过滤
// @Tags PropertyUnit (房屋模块)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "关键字"
// @Param status query string false "状态 OCCUPIED/VACANT"
// @Success 200 {object} dto.ApiResponse
// @Router /api/property-units [get]
func (ctrl *PropertyUnitController) List(c *gin.Context) {
	units, err := ctrl.unitService.Search(c.Request.Context(), c.Query("keyword"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(units))
}

// Create
// @Summary 新增房屋
// @Tags PropertyUnit (房屋模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PropertyUnit true "房屋信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/property-units [post]
func (ctrl *PropertyUnitController) Create(c *gin.Context) {
	var unit model.PropertyUnit
	if err := c.ShouldBindJSON(&unit); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	if err := ctrl.unitService.Create(c.Request.Context(), &unit); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", unit))
}

// Update
// @Summary 更新房屋
// @Tags PropertyUnit (房屋模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房屋 ID"
// @Param request body model.PropertyUnit true "房屋信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/property-units/{id} [put]
func (ctrl *PropertyUnitController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.PropertyUnit
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	unit, err := ctrl.unitService.Update(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", unit))
}

// Delete
// @Summary 删除房屋
// @Tags PropertyUnit (房屋模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "房屋 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/property-units/{id} [delete]
func (ctrl *PropertyUnitController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.unitService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
