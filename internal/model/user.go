package model

import "time"

// User 系统用户
type User struct {
	BaseModel
	Username    string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"` // 哈希密码
	FullName    string     `gorm:"size:50" json:"fullName"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Email       string     `gorm:"size:100" json:"email"`
	Active      bool       `gorm:"default:true" json:"active"`
	LastLoginAt *time.Time `json:"lastLoginAt"`

	// 可选关联到住户档案（业主账号）
	ResidentID *int64    `gorm:"index" json:"residentId"`
	Resident   *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`

	Roles []Role `gorm:"many2many:sys_user_roles;" json:"roles"`
}

func (User) TableName() string {
	return "sys_users"
}

// RoleCodes 返回用户持有的角色编码
func (u *User) RoleCodes() []string {
	codes := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		codes = append(codes, r.Code)
	}
	return codes
}

// Authorities 返回带 ROLE_ 前缀的权限串，写入令牌 roles 声明
func (u *User) Authorities() []string {
	auths := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		auths = append(auths, "ROLE_"+r.Code)
	}
	return auths
}
