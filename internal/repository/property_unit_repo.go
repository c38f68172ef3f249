package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// PropertyUnitRepository 房屋台账仓库接口
type PropertyUnitRepository interface {
	Create(ctx context.Context, unit *model.PropertyUnit) error
	GetByID(ctx context.Context, id int64) (*model.PropertyUnit, error)
	Update(ctx context.Context, unit *model.PropertyUnit) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]model.PropertyUnit, error)
	List(ctx context.Context, keyword string, status model.UnitStatus) ([]model.PropertyUnit, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.UnitStatus) (int64, error)
}

type propertyUnitRepository struct {
	db *gorm.DB
}

// NewPropertyUnitRepository 创建房屋台账仓库
func NewPropertyUnitRepository(db *gorm.DB) PropertyUnitRepository {
	return &propertyUnitRepository{db: db}
}

func (r *propertyUnitRepository) Create(ctx context.Context, unit *model.PropertyUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *propertyUnitRepository) GetByID(ctx context.Context, id int64) (*model.PropertyUnit, error) {
	var unit model.PropertyUnit
	err := r.db.WithContext(ctx).First(&unit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *propertyUnitRepository) Update(ctx context.Context, unit *model.PropertyUnit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *propertyUnitRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.PropertyUnit{}, id).Error
}

func (r *propertyUnitRepository) FindAll(ctx context.Context) ([]model.PropertyUnit, error) {
	var units []model.PropertyUnit
	err := r.db.WithContext(ctx).Order("building ASC, unit ASC, room_number ASC").Find(&units).Error
	return units, err
}

// List 楼栋/房号/业主模糊检索，状态精确匹配
func (r *propertyUnitRepository) List(ctx context.Context, keyword string, status model.UnitStatus) ([]model.PropertyUnit, error) {
	query := r.db.WithContext(ctx).Model(&model.PropertyUnit{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("building LIKE ? OR room_number LIKE ? OR owner LIKE ?", like, like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var units []model.PropertyUnit
	err := query.Order("building ASC, unit ASC, room_number ASC").Find(&units).Error
	return units, err
}

func (r *propertyUnitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PropertyUnit{}).Count(&count).Error
	return count, err
}

func (r *propertyUnitRepository) CountByStatus(ctx context.Context, status model.UnitStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PropertyUnit{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
