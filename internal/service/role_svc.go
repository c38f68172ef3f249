package service

import (
	"context"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// RoleService 角色管理服务
type RoleService struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleService 工厂方法
func NewRoleService(roleRepo repository.RoleRepository, userRepo repository.UserRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo, userRepo: userRepo}
}

// GetAllRoles 角色列表，附带每个角色下的用户数
func (s *RoleService) GetAllRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.roleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		count, err := s.userRepo.CountByRoleID(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.RoleResponse{Role: role, UserCount: count})
	}
	return result, nil
}

// GetAvailableRoles 创建用户时可分配的角色（普通用户、工程人员）
func (s *RoleService) GetAvailableRoles(ctx context.Context) ([]model.Role, error) {
	return s.roleRepo.FindByCodes(ctx, []string{model.RoleCodeUser, model.RoleCodeEngineer})
}

// GetRoleByID 根据 ID 查询角色
func (s *RoleService) GetRoleByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	count, err := s.userRepo.CountByRoleID(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	return &dto.RoleResponse{Role: *role, UserCount: count}, nil
}

// CreateRole 创建角色，编码唯一
func (s *RoleService) CreateRole(ctx context.Context, req dto.RoleRequest) (*dto.RoleResponse, error) {
	existing, err := s.roleRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleCodeTaken
	}

	role := &model.Role{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{Role: *role, UserCount: 0}, nil
}

// UpdateRole 更新角色
// 系统预设角色（ADMIN/USER/ENGINEER）不允许修改
func (s *RoleService) UpdateRole(ctx context.Context, id int64, req dto.RoleRequest) (*dto.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	if model.IsReservedRoleCode(role.Code) {
		return nil, ErrRoleReserved
	}

	// 编码变化时校验唯一
	if role.Code != req.Code {
		existing, err := s.roleRepo.GetByCode(ctx, req.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrRoleCodeTaken
		}
		role.Code = req.Code
	}

	role.Name = req.Name
	role.Description = req.Description
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByRoleID(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	return &dto.RoleResponse{Role: *role, UserCount: count}, nil
}

// DeleteRole 删除角色
// 系统预设角色不允许删除；仍有用户持有时拒绝删除
func (s *RoleService) DeleteRole(ctx context.Context, id int64) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	if model.IsReservedRoleCode(role.Code) {
		return ErrRoleReserved
	}

	count, err := s.userRepo.CountByRoleID(ctx, role.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, role)
}
