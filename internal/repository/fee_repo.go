package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"property_mgmt_v1/internal/model"
)

// ==================== FeeBillRepository 账单仓库 ====================

// FeeBillRepository 账单仓库接口
type FeeBillRepository interface {
	Create(ctx context.Context, bill *model.FeeBill) error
	GetByID(ctx context.Context, id int64) (*model.FeeBill, error)
	Update(ctx context.Context, bill *model.FeeBill) error
	FindAll(ctx context.Context) ([]model.FeeBill, error)
	FindByOwnerName(ctx context.Context, ownerName string) ([]model.FeeBill, error)
	// ExistsByTriple 按 (type, billingPeriod, ownerName) 文本三元组判断账单是否已生成
	ExistsByTriple(ctx context.Context, billType, billingPeriod, ownerName string) (bool, error)
	SumAmountByStatus(ctx context.Context, status model.BillStatus) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.BillStatus) (int64, error)
	MarkOverdue(ctx context.Context, ids []int64) (int64, error)
	FindByStatus(ctx context.Context, status model.BillStatus) ([]model.FeeBill, error)
}

type feeBillRepository struct {
	db *gorm.DB
}

// NewFeeBillRepository 创建账单仓库
func NewFeeBillRepository(db *gorm.DB) FeeBillRepository {
	return &feeBillRepository{db: db}
}

func (r *feeBillRepository) Create(ctx context.Context, bill *model.FeeBill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *feeBillRepository) GetByID(ctx context.Context, id int64) (*model.FeeBill, error) {
	var bill model.FeeBill
	err := r.db.WithContext(ctx).First(&bill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *feeBillRepository) Update(ctx context.Context, bill *model.FeeBill) error {
	return r.db.WithContext(ctx).Save(bill).Error
}

func (r *feeBillRepository) FindAll(ctx context.Context) ([]model.FeeBill, error) {
	var bills []model.FeeBill
	err := r.db.WithContext(ctx).Order("id DESC").Find(&bills).Error
	return bills, err
}

func (r *feeBillRepository) FindByOwnerName(ctx context.Context, ownerName string) ([]model.FeeBill, error) {
	var bills []model.FeeBill
	err := r.db.WithContext(ctx).Where("owner_name = ?", ownerName).Order("id DESC").Find(&bills).Error
	return bills, err
}

func (r *feeBillRepository) ExistsByTriple(ctx context.Context, billType, billingPeriod, ownerName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FeeBill{}).
		Where("type = ? AND billing_period = ? AND owner_name = ?", billType, billingPeriod, ownerName).
		Count(&count).Error
	return count > 0, err
}

func (r *feeBillRepository) SumAmountByStatus(ctx context.Context, status model.BillStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.FeeBill{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *feeBillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FeeBill{}).Count(&count).Error
	return count, err
}

func (r *feeBillRepository) CountByStatus(ctx context.Context, status model.BillStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FeeBill{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// MarkOverdue 批量将账单置为逾期
func (r *feeBillRepository) MarkOverdue(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.FeeBill{}).
		Where("id IN ? AND status = ?", ids, model.BillPending).
		Update("status", model.BillOverdue)
	return res.RowsAffected, res.Error
}

func (r *feeBillRepository) FindByStatus(ctx context.Context, status model.BillStatus) ([]model.FeeBill, error) {
	var bills []model.FeeBill
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&bills).Error
	return bills, err
}

// ==================== FeeItemRepository 收费项目仓库 ====================

// FeeItemRepository 收费项目仓库接口
type FeeItemRepository interface {
	Create(ctx context.Context, item *model.FeeItem) error
	GetByID(ctx context.Context, id int64) (*model.FeeItem, error)
	Update(ctx context.Context, item *model.FeeItem) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]model.FeeItem, error)
}

type feeItemRepository struct {
	db *gorm.DB
}

// NewFeeItemRepository 创建收费项目仓库
func NewFeeItemRepository(db *gorm.DB) FeeItemRepository {
	return &feeItemRepository{db: db}
}

func (r *feeItemRepository) Create(ctx context.Context, item *model.FeeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID 未找到返回 (nil, nil)
func (r *feeItemRepository) GetByID(ctx context.Context, id int64) (*model.FeeItem, error) {
	var item model.FeeItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *feeItemRepository) Update(ctx context.Context, item *model.FeeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *feeItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.FeeItem{}, id).Error
}

func (r *feeItemRepository) FindAll(ctx context.Context) ([]model.FeeItem, error) {
	var items []model.FeeItem
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// ==================== PaymentRepository 缴费仓库 ====================

// PaymentRepository 缴费记录仓库接口
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindAll(ctx context.Context) ([]model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建缴费记录仓库
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).Order("id DESC").Find(&payments).Error
	return payments, err
}
