package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/service"
)

type AnnouncementController struct {
	announcementService *service.AnnouncementService
}

func NewAnnouncementController(s *service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: s}
}

// Latest
// @Summary 最新公告
// @Description 按发布时间倒序返回最近 10 条
// @Tags Announcement (公告模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApiResponse
// @Router /api/announcements [get]
func (ctrl *AnnouncementController) Latest(c *gin.Context) {
	announcements, err := ctrl.announcementService.FindLatest(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(announcements))
}

// Create
// @Summary 发布公告
// @Description 未指定发布时间时立即发布
// @Tags Announcement (公告模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Announcement true "公告内容"
// @Success 200 {object} dto.ApiResponse
// @Router /api/announcements [post]
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var announcement model.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		badRequest(c, "标题和内容不能为空")
		return
	}

	if err := ctrl.announcementService.Create(c.Request.Context(), &announcement); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("发布成功", announcement))
}

// Update
// @Summary 更新公告
// @Tags Announcement (公告模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "公告 ID"
// @Param request body model.Announcement true "公告内容"
// @Success 200 {object} dto.ApiResponse
// @Router /api/announcements/{id} [put]
func (ctrl *AnnouncementController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.Announcement
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "标题和内容不能为空")
		return
	}

	announcement, err := ctrl.announcementService.Update(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("更新成功", announcement))
}

// Delete
// @Summary 删除公告
// @Tags Announcement (公告模块)
// @Produce json
// @Security BearerAuth
// @Param id path int true "公告 ID"
// @Success 200 {object} dto.ApiResponse
// @Router /api/announcements/{id} [delete]
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.announcementService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMsg("删除成功", nil))
}
