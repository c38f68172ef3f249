package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

func setupRoleTestDB(t *testing.T) (*gorm.DB, *RoleService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Role{}, &model.Resident{}, &model.User{}); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	svc := NewRoleService(repository.NewRoleRepository(db), repository.NewUserRepository(db))
	return db, svc
}

func TestRoleService_CreateAndList(t *testing.T) {
	db, svc := setupRoleTestDB(t)
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, dto.RoleRequest{Code: "CLEANER", Name: "保洁人员"})
	if err != nil {
		t.Fatalf("创建角色失败: %v", err)
	}
	if role.UserCount != 0 {
		t.Errorf("新角色用户数 = %d, want 0", role.UserCount)
	}

	// 编码重复
	if _, err := svc.CreateRole(ctx, dto.RoleRequest{Code: "CLEANER", Name: "保洁"}); !errors.Is(err, ErrRoleCodeTaken) {
		t.Errorf("err = %v, want ErrRoleCodeTaken", err)
	}

	// 列表带用户数
	db.Create(&model.User{Username: "u1", Password: "x", Roles: []model.Role{role.Role}})
	roles, err := svc.GetAllRoles(ctx)
	if err != nil {
		t.Fatalf("查询角色列表失败: %v", err)
	}
	if len(roles) != 1 {
		t.Fatalf("角色数量 = %d, want 1", len(roles))
	}
	if roles[0].UserCount != 1 {
		t.Errorf("用户数 = %d, want 1", roles[0].UserCount)
	}
}

func TestRoleService_ReservedRoleGuards(t *testing.T) {
	db, svc := setupRoleTestDB(t)
	ctx := context.Background()

	admin := model.Role{Code: model.RoleCodeAdmin, Name: "物业管理员"}
	db.Create(&admin)

	// 预设角色不能改
	_, err := svc.UpdateRole(ctx, admin.ID, dto.RoleRequest{Code: "ADMIN2", Name: "改名"})
	if !errors.Is(err, ErrRoleReserved) {
		t.Errorf("更新预设角色: err = %v, want ErrRoleReserved", err)
	}

	// 预设角色不能删
	if err := svc.DeleteRole(ctx, admin.ID); !errors.Is(err, ErrRoleReserved) {
		t.Errorf("删除预设角色: err = %v, want ErrRoleReserved", err)
	}
}

func TestRoleService_DeleteRoleInUse(t *testing.T) {
	db, svc := setupRoleTestDB(t)
	ctx := context.Background()

	custom := model.Role{Code: "CLEANER", Name: "保洁人员"}
	db.Create(&custom)
	db.Create(&model.User{Username: "u1", Password: "x", Roles: []model.Role{custom}})

	// 仍有用户持有
	if err := svc.DeleteRole(ctx, custom.ID); !errors.Is(err, ErrRoleInUse) {
		t.Errorf("err = %v, want ErrRoleInUse", err)
	}

	// 解绑后可删
	db.Exec("DELETE FROM sys_user_roles")
	if err := svc.DeleteRole(ctx, custom.ID); err != nil {
		t.Errorf("删除空角色失败: %v", err)
	}
}

func TestRoleService_AvailableRoles(t *testing.T) {
	db, svc := setupRoleTestDB(t)
	ctx := context.Background()

	db.Create(&model.Role{Code: model.RoleCodeAdmin, Name: "物业管理员"})
	db.Create(&model.Role{Code: model.RoleCodeUser, Name: "普通用户"})
	db.Create(&model.Role{Code: model.RoleCodeEngineer, Name: "工程人员"})
	db.Create(&model.Role{Code: "CLEANER", Name: "保洁人员"})

	roles, err := svc.GetAvailableRoles(ctx)
	if err != nil {
		t.Fatalf("查询可分配角色失败: %v", err)
	}

	// 只有普通用户和工程人员可在界面上分配
	if len(roles) != 2 {
		t.Fatalf("可分配角色数量 = %d, want 2", len(roles))
	}
	for _, r := range roles {
		if r.Code != model.RoleCodeUser && r.Code != model.RoleCodeEngineer {
			t.Errorf("不应出现在可分配列表: %s", r.Code)
		}
	}
}
