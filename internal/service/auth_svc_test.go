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
	"property_mgmt_v1/internal/middleware"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

func setupAuthTestDB(t *testing.T) (*gorm.DB, *AuthService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Role{}, &model.Resident{}, &model.User{}); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}
	return db, NewAuthService(repository.NewUserRepository(db))
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, active bool) *model.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}

	role := model.Role{Code: model.RoleCodeAdmin, Name: "物业管理员"}
	db.FirstOrCreate(&role, model.Role{Code: model.RoleCodeAdmin})

	user := model.User{
		Username: username,
		Password: string(hashed),
		FullName: "测试用户",
		Active:   active,
		Roles:    []model.Role{role},
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return &user
}

func TestAuthenticate_Success(t *testing.T) {
	db, svc := setupAuthTestDB(t)
	ctx := context.Background()
	createTestUser(t, db, "admin", "admin123", true)

	resp, err := svc.Authenticate(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	if resp.Token == "" {
		t.Error("令牌为空")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("TokenType = %s, want Bearer", resp.TokenType)
	}
	if len(resp.Roles) != 1 || resp.Roles[0] != "ROLE_ADMIN" {
		t.Errorf("角色 = %v, want [ROLE_ADMIN]", resp.Roles)
	}

	// 令牌能被解析且 sub 正确
	claims, err := middleware.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("sub = %s, want admin", claims.Subject)
	}

	// 登录副作用：最后登录时间已记录
	var updated model.User
	db.First(&updated, "username = ?", "admin")
	if updated.LastLoginAt == nil {
		t.Error("最后登录时间未更新")
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	db, svc := setupAuthTestDB(t)
	createTestUser(t, db, "admin", "admin123", true)

	_, err := svc.Authenticate(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	_, svc := setupAuthTestDB(t)

	// 用户不存在与密码错误返回同一个错误，不暴露账号是否存在
	_, err := svc.Authenticate(context.Background(), dto.LoginRequest{Username: "nobody", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	db, svc := setupAuthTestDB(t)
	createTestUser(t, db, "frozen", "admin123", false)

	// 密码正确但账号停用，给出明确提示
	_, err := svc.Authenticate(context.Background(), dto.LoginRequest{Username: "frozen", Password: "admin123"})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestCurrentUser(t *testing.T) {
	db, svc := setupAuthTestDB(t)
	createTestUser(t, db, "admin", "admin123", true)

	user, err := svc.CurrentUser(context.Background(), "admin")
	if err != nil {
		t.Fatalf("查询当前用户失败: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("username = %s, want admin", user.Username)
	}
	if len(user.Roles) != 1 {
		t.Errorf("角色数量 = %d, want 1", len(user.Roles))
	}

	if _, err := svc.CurrentUser(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
