package bootstrap

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/pkg/logger"
)

// 预设角色，code 与认证层的角色校验一致
var seedRoles = []model.Role{
	{Code: model.RoleCodeAdmin, Name: "物业管理员", Description: "系统管理员，拥有全部权限"},
	{Code: model.RoleCodeUser, Name: "普通用户", Description: "小区业主账号"},
	{Code: model.RoleCodeEngineer, Name: "工程人员", Description: "维修工程人员"},
}

// Seed 幂等初始化预设角色和管理员账号
// 已存在的角色/账号不会被覆盖，admin 密码只在首次创建时生效
func Seed(ctx context.Context, db *gorm.DB, adminPassword string) error {
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)

	for _, role := range seedRoles {
		existing, err := roleRepo.GetByCode(ctx, role.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		r := role
		if err := roleRepo.Create(ctx, &r); err != nil {
			return err
		}
		logger.L.Infow("初始化角色", "code", r.Code)
	}

	admin, err := userRepo.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	adminRole, err := roleRepo.GetByCode(ctx, model.RoleCodeAdmin)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: "admin",
		Password: string(hashed),
		FullName: "系统管理员",
		Active:   true,
		Roles:    []model.Role{*adminRole},
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}
	logger.L.Infow("初始化管理员账号", "username", user.Username)
	return nil
}
