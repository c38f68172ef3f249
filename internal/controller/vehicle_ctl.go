package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/service"
)

type VehicleController struct {
	vehicleService *service.VehicleService
}

func NewVehicleController(s *service.VehicleService) *VehicleController {
	return &VehicleController{vehicleService: s}
}

// List
// @Summary 车辆列表
// @Description 可按车牌号模糊检索
// @Tags Vehicle (车辆模块)
// @Produce json
// @Security BearerAuth
// @Param plateNumber query string false "车牌号"
// @Success 200 {object} dto.ApiResponse
// @Router /api/vehicles [get]
func (ctrl *VehicleController) List(c *gin.Context) {
	vehicles, err := ctrl.vehicleService.List(c.Request.Context(), c.Query("plateNumber"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(vehicles))
}

// Create
// @Summary 登记车辆
// @Tags Vehicle (车辆模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Vehicle true "车辆信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/vehicles [post]
func (ctrl *VehicleController) Create(c *gin.Context) {
	var vehicle model.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	if err := ctrl.vehicleService.Create(c.Request.Context(), &vehicle); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("登记成功", vehicle))
}

// Update
// @Summary 更新车辆
// @Tags Vehicle (车辆模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "车辆 ID"
// @Param request body model.Vehicle true "车辆信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/vehicles/{id} [put]
func (ctrl *VehicleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.Vehicle
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	vehicle, err := ctrl.vehicleService.Update(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", vehicle))
}

// Delete
// @Summary 删除车辆
// @Tags Vehicle (车辆模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "车辆 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/vehicles/{id} [delete]
func (ctrl *VehicleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.vehicleService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
