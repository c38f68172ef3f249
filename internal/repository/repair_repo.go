package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// RepairOrderRepository 报修工单仓库接口
type RepairOrderRepository interface {
	Create(ctx context.Context, order *model.RepairOrder) error
	GetByID(ctx context.Context, id int64) (*model.RepairOrder, error)
	Update(ctx context.Context, order *model.RepairOrder) error
	FindAll(ctx context.Context) ([]model.RepairOrder, error)
	CountByStatus(ctx context.Context, status model.RepairStatus) (int64, error)
}

type repairOrderRepository struct {
	db *gorm.DB
}

// NewRepairOrderRepository 创建报修工单仓库
func NewRepairOrderRepository(db *gorm.DB) RepairOrderRepository {
	return &repairOrderRepository{db: db}
}

func (r *repairOrderRepository) Create(ctx context.Context, order *model.RepairOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *repairOrderRepository) GetByID(ctx context.Context, id int64) (*model.RepairOrder, error) {
	var order model.RepairOrder
	err := r.db.WithContext(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repairOrderRepository) Update(ctx context.Context, order *model.RepairOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *repairOrderRepository) FindAll(ctx context.Context) ([]model.RepairOrder, error) {
	var orders []model.RepairOrder
	err := r.db.WithContext(ctx).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *repairOrderRepository) CountByStatus(ctx context.Context, status model.RepairStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RepairOrder{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
