package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/middleware"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/pkg/logger"
)

// AuthService 认证服务
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 工厂方法
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authenticate 用户名密码登录
// 凭证错误与账号停用是两类错误：前者不泄露用户是否存在，后者明确提示联系管理员。
// 登录成功的副作用：记录最后登录时间
func (s *AuthService) Authenticate(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// 时间戳写失败不应拦住登录
		logger.L.Warnw("更新最后登录时间失败", "username", user.Username, "err", err)
	}

	authorities := user.Authorities()
	token, err := middleware.GenerateToken(user.Username, authorities)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:       token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(middleware.GetJWTConfig().TokenTTL.Seconds()),
		Username:    user.Username,
		DisplayName: user.FullName,
		Roles:       authorities,
	}, nil
}

// CurrentUser 按用户名取当前用户（含住户档案、角色）
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
