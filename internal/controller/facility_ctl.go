package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/service"
)

type FacilityController struct {
	facilityService *service.FacilityService
}

func NewFacilityController(s *service.FacilityService) *FacilityController {
	return &FacilityController{facilityService: s}
}

// List
// @Summary 设施列表
// @Tags Facility (设施模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/facilities [get]
func (ctrl *FacilityController) List(c *gin.Context) {
	facilities, err := ctrl.facilityService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(facilities))
}

// Get
// @Summary 设施详情
// @Tags Facility (设施模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "设施 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/facilities/{id} [get]
func (ctrl *FacilityController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	facility, err := ctrl.facilityService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(facility))
}

// Create
// @Summary 新增设施
// @Tags Facility (设施模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Facility true "设施信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/facilities [post]
func (ctrl *FacilityController) Create(c *gin.Context) {
	var facility model.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	if err := ctrl.facilityService.Create(c.Request.Context(), &facility); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", facility))
}

// Update
// @Summary 更新设施
// @Tags Facility (设施模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "设施 ID"
// @Param request body model.Facility true "设施信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/facilities/{id} [put]
func (ctrl *FacilityController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.Facility
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	facility, err := ctrl.facilityService.Update(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", facility))
}

// Delete
// @Summary 删除设施
// @Tags Facility (设施模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "设施 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/facilities/{id} [delete]
func (ctrl *FacilityController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.facilityService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
