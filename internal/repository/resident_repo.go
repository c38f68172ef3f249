package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// ResidentRepository 住户仓库接口
type ResidentRepository interface {
	Create(ctx context.Context, resident *model.Resident) error
	GetByID(ctx context.Context, id int64) (*model.Resident, error)
	Update(ctx context.Context, resident *model.Resident) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ResidentFilter) ([]model.Resident, int64, error)
	FindByStatus(ctx context.Context, status model.ResidentStatus) ([]model.Resident, error)
	Count(ctx context.Context) (int64, error)
}

// ResidentFilter 住户筛选条件
type ResidentFilter struct {
	Name     string
	Building string
	Status   model.ResidentStatus
	Page     int
	PageSize int
}

type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository 创建住户仓库
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{db: db}
}

func (r *residentRepository) Create(ctx context.Context, resident *model.Resident) error {
	return r.db.WithContext(ctx).Create(resident).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *residentRepository) GetByID(ctx context.Context, id int64) (*model.Resident, error) {
	var resident model.Resident
	err := r.db.WithContext(ctx).First(&resident, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

func (r *residentRepository) Update(ctx context.Context, resident *model.Resident) error {
	return r.db.WithContext(ctx).Save(resident).Error
}

func (r *residentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Resident{}, id).Error
}

// List 住户分页列表，姓名模糊、楼栋/状态精确
func (r *residentRepository) List(ctx context.Context, filter ResidentFilter) ([]model.Resident, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Resident{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Building != "" {
		query = query.Where("building = ?", filter.Building)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var residents []model.Resident
	err := query.
		Order("id DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&residents).Error
	return residents, total, err
}

// FindByStatus 按入住状态查询全部住户，账单批量生成使用
func (r *residentRepository) FindByStatus(ctx context.Context, status model.ResidentStatus) ([]model.Resident, error) {
	var residents []model.Resident
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&residents).Error
	return residents, err
}

func (r *residentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Resident{}).Count(&count).Error
	return count, err
}
