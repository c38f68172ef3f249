package service

import "errors"

// 业务错误使用哨兵值，调用方用 errors.Is 判断错误身份而不是比对消息文本
var (
	// 认证
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrAccountDisabled    = errors.New("账号已被停用，请联系管理员")

	// 账单 / 缴费
	ErrBillNotFound         = errors.New("账单不存在")
	ErrFeeItemNotFound      = errors.New("收费项目不存在")
	ErrFeeItemInactive      = errors.New("收费项目未启用，无法生成账单")
	ErrInvalidPeriod        = errors.New("账期不能为空")
	ErrNoOccupiedResidents  = errors.New("没有已入住的住户")
	ErrAllBillsAlreadyExist = errors.New("选定账期的账单已存在，无需重复生成")
	ErrAmountNotPositive    = errors.New("金额必须大于 0")

	// 用户 / 角色
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUsernameTaken     = errors.New("用户名已存在")
	ErrRoleNotFound      = errors.New("角色不存在")
	ErrRoleCodeTaken     = errors.New("角色编码已存在")
	ErrRoleReserved      = errors.New("系统预设角色不允许修改或删除")
	ErrRoleInUse         = errors.New("该角色下还有用户，无法删除")
	ErrRoleNotAssignable = errors.New("只能添加工程人员或普通用户")

	// 社区业务
	ErrResidentNotFound     = errors.New("住户不存在")
	ErrInvalidMoveInDate    = errors.New("入住日期格式不正确")
	ErrRepairNotFound       = errors.New("工单不存在")
	ErrComplaintNotFound    = errors.New("投诉记录不存在")
	ErrFacilityNotFound     = errors.New("设施不存在")
	ErrParkingNotFound      = errors.New("车位不存在")
	ErrVehicleNotFound      = errors.New("车辆不存在")
	ErrUnitNotFound         = errors.New("房屋不存在")
	ErrAnnouncementNotFound = errors.New("公告不存在")
)
