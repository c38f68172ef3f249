package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// ComplaintRepository 投诉仓库接口
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	GetByID(ctx context.Context, id int64) (*model.Complaint, error)
	Update(ctx context.Context, complaint *model.Complaint) error
	FindAll(ctx context.Context) ([]model.Complaint, error)
	CountByStatus(ctx context.Context, status model.ComplaintStatus) (int64, error)
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository 创建投诉仓库
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	var complaint model.Complaint
	err := r.db.WithContext(ctx).First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}

func (r *complaintRepository) FindAll(ctx context.Context) ([]model.Complaint, error) {
	var complaints []model.Complaint
	err := r.db.WithContext(ctx).Order("id DESC").Find(&complaints).Error
	return complaints, err
}

func (r *complaintRepository) CountByStatus(ctx context.Context, status model.ComplaintStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Complaint{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
