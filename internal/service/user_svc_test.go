package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

func setupUserTestDB(t *testing.T) (*gorm.DB, *UserService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Role{}, &model.Resident{}, &model.User{}); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewRoleRepository(db),
		repository.NewResidentRepository(db),
	)
	return db, svc
}

// seedUserFixtures 预置角色和一个住户档案
func seedUserFixtures(t *testing.T, db *gorm.DB) (userRole model.Role, resident model.Resident) {
	userRole = model.Role{Code: model.RoleCodeUser, Name: "普通用户"}
	db.Create(&userRole)
	db.Create(&model.Role{Code: model.RoleCodeAdmin, Name: "物业管理员"})
	resident = model.Resident{Name: "张三", Building: "1栋", Unit: "1单元", RoomNumber: "101",
		Status: model.ResidentOccupied}
	db.Create(&resident)
	return userRole, resident
}

func TestCreateUser(t *testing.T) {
	db, svc := setupUserTestDB(t)
	ctx := context.Background()
	userRole, resident := seedUserFixtures(t, db)

	user, err := svc.CreateUser(ctx, dto.UserRequest{
		Username:   "zhangsan",
		Password:   "pass123456",
		FullName:   "张三",
		ResidentID: resident.ID,
		RoleID:     userRole.ID,
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	if !user.Active {
		t.Error("新用户默认应启用")
	}
	if user.ResidentID == nil || *user.ResidentID != resident.ID {
		t.Error("住户档案未绑定")
	}
	// 密码已哈希
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pass123456")); err != nil {
		t.Error("密码哈希校验失败")
	}

	// 用户名重复
	_, err = svc.CreateUser(ctx, dto.UserRequest{
		Username: "zhangsan", Password: "pass123456", FullName: "张三",
		ResidentID: resident.ID, RoleID: userRole.ID,
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestCreateUser_OnlyAssignableRoles(t *testing.T) {
	db, svc := setupUserTestDB(t)
	ctx := context.Background()
	_, resident := seedUserFixtures(t, db)

	var admin model.Role
	db.First(&admin, "code = ?", model.RoleCodeAdmin)

	// 界面上不能创建管理员账号
	_, err := svc.CreateUser(ctx, dto.UserRequest{
		Username: "hacker", Password: "pass123456", FullName: "黑客",
		ResidentID: resident.ID, RoleID: admin.ID,
	})
	if !errors.Is(err, ErrRoleNotAssignable) {
		t.Errorf("err = %v, want ErrRoleNotAssignable", err)
	}
}

func TestCreateUser_MissingReferences(t *testing.T) {
	db, svc := setupUserTestDB(t)
	ctx := context.Background()
	userRole, resident := seedUserFixtures(t, db)

	_, err := svc.CreateUser(ctx, dto.UserRequest{
		Username: "u1", Password: "pass123456", FullName: "用户",
		ResidentID: 9999, RoleID: userRole.ID,
	})
	if !errors.Is(err, ErrResidentNotFound) {
		t.Errorf("住户不存在: err = %v, want ErrResidentNotFound", err)
	}

	_, err = svc.CreateUser(ctx, dto.UserRequest{
		Username: "u1", Password: "pass123456", FullName: "用户",
		ResidentID: resident.ID, RoleID: 9999,
	})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("角色不存在: err = %v, want ErrRoleNotFound", err)
	}
}

func TestToggleUserStatus(t *testing.T) {
	db, svc := setupUserTestDB(t)
	ctx := context.Background()
	userRole, resident := seedUserFixtures(t, db)

	user, err := svc.CreateUser(ctx, dto.UserRequest{
		Username: "zhangsan", Password: "pass123456", FullName: "张三",
		ResidentID: resident.ID, RoleID: userRole.ID,
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	toggled, err := svc.ToggleUserStatus(ctx, user.ID)
	if err != nil {
		t.Fatalf("切换状态失败: %v", err)
	}
	if toggled.Active {
		t.Error("切换后应为停用")
	}

	toggled, _ = svc.ToggleUserStatus(ctx, user.ID)
	if !toggled.Active {
		t.Error("再次切换后应为启用")
	}
}

func TestResetPassword(t *testing.T) {
	db, svc := setupUserTestDB(t)
	ctx := context.Background()
	userRole, resident := seedUserFixtures(t, db)

	user, err := svc.CreateUser(ctx, dto.UserRequest{
		Username: "zhangsan", Password: "pass123456", FullName: "张三",
		ResidentID: resident.ID, RoleID: userRole.ID,
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	if err := svc.ResetPassword(ctx, user.ID, "newpass789"); err != nil {
		t.Fatalf("重置密码失败: %v", err)
	}

	var updated model.User
	db.First(&updated, user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass789")); err != nil {
		t.Error("新密码校验失败")
	}

	if err := svc.ResetPassword(ctx, 9999, "whatever1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUser(t *testing.T) {
	db, svc := setupUserTestDB(t)
	ctx := context.Background()
	userRole, resident := seedUserFixtures(t, db)

	user, err := svc.CreateUser(ctx, dto.UserRequest{
		Username: "zhangsan", Password: "pass123456", FullName: "张三",
		ResidentID: resident.ID, RoleID: userRole.ID,
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("删除用户失败: %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Error("用户未删除")
	}

	// 关联的住户档案不受影响
	var residentCount int64
	db.Model(&model.Resident{}).Count(&residentCount)
	if residentCount != 1 {
		t.Error("删除用户不应影响住户档案")
	}
}
