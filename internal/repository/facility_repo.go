package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// FacilityRepository 设施仓库接口
type FacilityRepository interface {
	Create(ctx context.Context, facility *model.Facility) error
	GetByID(ctx context.Context, id int64) (*model.Facility, error)
	Update(ctx context.Context, facility *model.Facility) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]model.Facility, error)
}

type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository 创建设施仓库
func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) Create(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *facilityRepository) GetByID(ctx context.Context, id int64) (*model.Facility, error) {
	var facility model.Facility
	err := r.db.WithContext(ctx).First(&facility, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) Update(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Save(facility).Error
}

func (r *facilityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Facility{}, id).Error
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]model.Facility, error) {
	var facilities []model.Facility
	err := r.db.WithContext(ctx).Order("id DESC").Find(&facilities).Error
	return facilities, err
}
