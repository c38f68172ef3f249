package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// ParkingSpaceRepository 车位仓库接口
type ParkingSpaceRepository interface {
	Create(ctx context.Context, space *model.ParkingSpace) error
	GetByID(ctx context.Context, id int64) (*model.ParkingSpace, error)
	Update(ctx context.Context, space *model.ParkingSpace) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status string) ([]model.ParkingSpace, error)
}

type parkingSpaceRepository struct {
	db *gorm.DB
}

// NewParkingSpaceRepository 创建车位仓库
func NewParkingSpaceRepository(db *gorm.DB) ParkingSpaceRepository {
	return &parkingSpaceRepository{db: db}
}

func (r *parkingSpaceRepository) Create(ctx context.Context, space *model.ParkingSpace) error {
	return r.db.WithContext(ctx).Create(space).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *parkingSpaceRepository) GetByID(ctx context.Context, id int64) (*model.ParkingSpace, error) {
	var space model.ParkingSpace
	err := r.db.WithContext(ctx).First(&space, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &space, nil
}

func (r *parkingSpaceRepository) Update(ctx context.Context, space *model.ParkingSpace) error {
	return r.db.WithContext(ctx).Save(space).Error
}

func (r *parkingSpaceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ParkingSpace{}, id).Error
}

// List 车位列表，可按状态过滤
func (r *parkingSpaceRepository) List(ctx context.Context, status string) ([]model.ParkingSpace, error) {
	query := r.db.WithContext(ctx).Model(&model.ParkingSpace{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var spaces []model.ParkingSpace
	err := query.Order("space_number ASC").Find(&spaces).Error
	return spaces, err
}
