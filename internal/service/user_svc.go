package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// UserService 用户管理服务
type UserService struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	residentRepo repository.ResidentRepository
}

// NewUserService 工厂方法
func NewUserService(userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	residentRepo repository.ResidentRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		residentRepo: residentRepo,
	}
}

// GetAllUsers 用户分页列表
func (s *UserService) GetAllUsers(ctx context.Context, filter repository.UserFilter) ([]model.User, int64, error) {
	return s.userRepo.List(ctx, filter)
}

// CreateUser 创建用户
// 界面上只能创建普通用户或工程人员账号，且必须关联住户档案
func (s *UserService) CreateUser(ctx context.Context, req dto.UserRequest) (*model.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	resident, err := s.residentRepo.GetByID(ctx, req.ResidentID)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	role, err := s.roleRepo.GetByID(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	if !model.IsAssignableRoleCode(role.Code) {
		return nil, ErrRoleNotAssignable
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := &model.User{
		Username:   req.Username,
		Password:   string(hashed),
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Active:     active,
		ResidentID: &resident.ID,
		Roles:      []model.Role{*role},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	user.Resident = resident
	return user, nil
}

// UpdateUser 更新用户
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 用户名变化时校验唯一
	if user.Username != req.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameTaken
		}
		user.Username = req.Username
	}

	if req.ResidentID != nil {
		resident, err := s.residentRepo.GetByID(ctx, *req.ResidentID)
		if err != nil {
			return nil, err
		}
		if resident == nil {
			return nil, ErrResidentNotFound
		}
		user.ResidentID = &resident.ID
		user.Resident = resident
	}

	if req.RoleID != nil {
		role, err := s.roleRepo.GetByID(ctx, *req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		if !model.IsAssignableRoleCode(role.Code) {
			return nil, ErrRoleNotAssignable
		}
		if err := s.userRepo.ReplaceRoles(ctx, user, []model.Role{*role}); err != nil {
			return nil, err
		}
		user.Roles = []model.Role{*role}
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.Email = req.Email
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser 删除用户（级联清理角色关联，不动关联的住户档案）
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, user)
}

// ToggleUserStatus 启用/停用切换
func (s *UserService) ToggleUserStatus(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Active = !user.Active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword 重置密码
func (s *UserService) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, string(hashed))
}
