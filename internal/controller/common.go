package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/service"
	"property_mgmt_v1/pkg/logger"
)

// 业务失败返回 HTTP 200 + success=false，其余按系统错误处理
var businessErrors = []error{
	service.ErrInvalidCredentials,
	service.ErrAccountDisabled,
	service.ErrBillNotFound,
	service.ErrFeeItemNotFound,
	service.ErrFeeItemInactive,
	service.ErrInvalidPeriod,
	service.ErrNoOccupiedResidents,
	service.ErrAllBillsAlreadyExist,
	service.ErrAmountNotPositive,
	service.ErrUserNotFound,
	service.ErrUsernameTaken,
	service.ErrRoleNotFound,
	service.ErrRoleCodeTaken,
	service.ErrRoleReserved,
	service.ErrRoleInUse,
	service.ErrRoleNotAssignable,
	service.ErrResidentNotFound,
	service.ErrInvalidMoveInDate,
	service.ErrRepairNotFound,
	service.ErrComplaintNotFound,
	service.ErrFacilityNotFound,
	service.ErrParkingNotFound,
	service.ErrVehicleNotFound,
	service.ErrUnitNotFound,
	service.ErrAnnouncementNotFound,
}

func fail(c *gin.Context, err error) {
	for _, be := range businessErrors {
		if errors.Is(err, be) {
			c.JSON(http.StatusOK, dto.Fail(err.Error()))
			return
		}
	}
	logger.L.Errorw("请求处理失败", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, dto.Fail("系统繁忙，请稍后重试"))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.Fail(msg))
}

// parseID 解析路径里的 :id，非法时返回 false 并已写响应
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "id 必须是数字")
		return 0, false
	}
	return id, true
}
