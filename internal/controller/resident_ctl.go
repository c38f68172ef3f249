package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
)

type ResidentController struct {
	residentService *service.ResidentService
}

func NewResidentController(s *service.ResidentService) *ResidentController {
	return &ResidentController{residentService: s}
}

// List
// @Summary 住户列表
// @Description 按姓名/楼栋/状态分页检索
// @Tags Resident (住户模块)
// @Produce json
// @Security BearerAuth
// @Param name query string false "姓名模糊匹配"
// @Param building query string false "楼栋"
// @Param status query string false "状态 OCCUPIED/VACANT/MOVING_OUT/RENTED"
// @Param page query int false "页码，默认 1"
// @Param pageSize query int false "每页条数，默认 10"
// @Success 200 {object} dto.ApiResponse
// @Router /api/residents [get]
func (ctrl *ResidentController) List(c *gin.Context) {
	var query dto.ResidentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "查询参数不合法")
		return
	}

	residents, total, err := ctrl.residentService.Search(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.PageResult{List: residents, Total: total, Page: query.Page}))
}

// Get
// @Summary 住户详情
// @Tags Resident (住户模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "住户 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/residents/{id} [get]
func (ctrl *ResidentController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resident, err := ctrl.residentService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resident))
}

// Create
// @Summary 住户建档
// @Tags Resident (住户模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResidentRequest true "住户信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/residents [post]
func (ctrl *ResidentController) Create(c *gin.Context) {
	var req dto.ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	resident, err := ctrl.residentService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("创建成功", resident))
}

// Update
// @Summary 更新住户
// @Tags Resident (住户模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "住户 ID"
// @Param request body dto.ResidentRequest true "住户信息"
// @Success 200 {object} dto.ApiResponse
// @Router /api/residents/{id} [put]
func (ctrl *ResidentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数不完整: "+err.Error())
		return
	}

	resident, err := ctrl.residentService.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", resident))
}

// Delete
// @Summary 删除住户
// @Tags Resident (住户模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "住户 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/residents/{id} [delete]
func (ctrl *ResidentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.residentService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
