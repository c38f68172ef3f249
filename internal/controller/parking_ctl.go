package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/service"
)

type ParkingController struct {
	parkingService *service.ParkingService
}

func NewParkingController(s *service.ParkingService) *ParkingController {
	return &ParkingController{parkingService: s}
}

// List
// @Summary 车位列表
// @Description 可按状态过滤
// @Tags Parking (车位模块)
// @Produce json
// @Security BearerAuth
// @Param status query string false "车位状态"
// @Success 200 {object} dto.ApiResponse
// @Router /api/parking-spaces [get]
func (ctrl *ParkingController) List(c *gin.Context) {
	spaces, err := ctrl.parkingService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(spaces))
}

// Get
// @Summary 车位详情
// @Tags Parking (车位模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "车位 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/parking-spaces/{id} [get]
func (ctrl *ParkingController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	space, err := ctrl.parkingService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(space))
}

// Create
// @Summary 新增车位
// @Tags Parking (车位模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ParkingSpace true "车位信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/parking-spaces [post]
func (ctrl *ParkingController) Create(c *gin.Context) {
	var space model.ParkingSpace
	if err := c.ShouldBindJSON(&space); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	if err := ctrl.parkingService.Create(c.Request.Context(), &space); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", space))
}

// Update
// @Summary 更新车位
// @Tags Parking (车位模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "车位 ID"
// @Param request body model.ParkingSpace true "车位信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/parking-spaces/{id} [put]
func (ctrl *ParkingController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.ParkingSpace
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	space, err := ctrl.parkingService.Update(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", space))
}

// Delete
// @Summary 删除车位
// @Tags Parking (车位模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "车位 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/parking-spaces/{id} [delete]
func (ctrl *ParkingController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.parkingService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
