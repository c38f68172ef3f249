package model

// 系统预设角色编码
// 注意：code 不带 ROLE_ 前缀，签发令牌时由认证层统一添加
const (
	RoleCodeAdmin    = "ADMIN"
	RoleCodeUser     = "USER"
	RoleCodeEngineer = "ENGINEER"
)

// Role 角色
type Role struct {
	BaseModel
	Code        string `gorm:"size:30;uniqueIndex;not null" json:"code"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Role) TableName() string {
	return "sys_roles"
}

// IsReservedRoleCode 是否系统预设角色
// 预设角色不允许改名、删除，所有判断统一走这里，禁止散落的字符串比较
func IsReservedRoleCode(code string) bool {
	switch code {
	case RoleCodeAdmin, RoleCodeUser, RoleCodeEngineer:
		return true
	}
	return false
}

// IsAssignableRoleCode 创建/编辑用户时允许绑定的角色
// 管理员账号只能由种子流程产生，界面上只能分配普通用户和工程人员
func IsAssignableRoleCode(code string) bool {
	return code == RoleCodeUser || code == RoleCodeEngineer
}
