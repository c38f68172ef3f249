package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
	"property_mgmt_v1/pkg/logger"
)

// FeeService 费用服务：账单、缴费、收费项目、批量生成与统计
type FeeService struct {
	db           *gorm.DB
	billRepo     repository.FeeBillRepository
	itemRepo     repository.FeeItemRepository
	paymentRepo  repository.PaymentRepository
	residentRepo repository.ResidentRepository
}

// NewFeeService 工厂方法
// db 用于把「缴费 + 账单状态翻转」「批量生成」包进同一事务
func NewFeeService(db *gorm.DB,
	billRepo repository.FeeBillRepository,
	itemRepo repository.FeeItemRepository,
	paymentRepo repository.PaymentRepository,
	residentRepo repository.ResidentRepository) *FeeService {
	return &FeeService{
		db:           db,
		billRepo:     billRepo,
		itemRepo:     itemRepo,
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
	}
}

// ==================== 账单管理 ====================

// FindAllBills 账单列表，ownerName 非空时按业主姓名精确过滤
func (s *FeeService) FindAllBills(ctx context.Context, ownerName string) ([]model.FeeBill, error) {
	if ownerName != "" {
		return s.billRepo.FindByOwnerName(ctx, ownerName)
	}
	return s.billRepo.FindAll(ctx)
}

// FindBillByID 根据 ID 查询账单
func (s *FeeService) FindBillByID(ctx context.Context, id int64) (*model.FeeBill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	return bill, nil
}

// CreateBill 手工创建账单，金额必须为正
func (s *FeeService) CreateBill(ctx context.Context, req dto.BillRequest) (*model.FeeBill, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	bill := &model.FeeBill{
		BillNumber:    generateBillNumber(),
		OwnerName:     req.OwnerName,
		Building:      req.Building,
		Type:          req.Type,
		Amount:        req.Amount,
		BillingPeriod: req.BillingPeriod,
		Status:        model.BillPending,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// ==================== 缴费记录 ====================

// FindAllPayments 缴费记录列表
func (s *FeeService) FindAllPayments(ctx context.Context) ([]model.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// CreatePayment 缴费
// 生成缴费记录并把账单翻转为已缴费，两步在同一事务内完成，
// 不允许出现「缴费记录已建而账单未更新」的中间态
func (s *FeeService) CreatePayment(ctx context.Context, req dto.PaymentRequest) (*model.Payment, error) {
	var payment *model.Payment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		billRepo := repository.NewFeeBillRepository(tx)
		paymentRepo := repository.NewPaymentRepository(tx)

		bill, err := billRepo.GetByID(ctx, req.BillID)
		if err != nil {
			return err
		}
		if bill == nil {
			return ErrBillNotFound
		}

		// 缴费记录从账单冗余业主/楼栋/金额/类型
		payment = &model.Payment{
			OrderNumber: generatePaymentOrderNumber(),
			BillID:      bill.ID,
			OwnerName:   bill.OwnerName,
			Building:    bill.Building,
			Amount:      bill.Amount,
			Type:        bill.Type,
			PayMethod:   req.PayMethod,
			Status:      model.PaymentSuccess,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		now := time.Now()
		bill.Status = model.BillPaid
		bill.PaidAt = &now
		bill.PayMethod = req.PayMethod
		return billRepo.Update(ctx, bill)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ==================== 收费项目 ====================

// FindAllFeeItems 收费项目列表
func (s *FeeService) FindAllFeeItems(ctx context.Context) ([]model.FeeItem, error) {
	return s.itemRepo.FindAll(ctx)
}

// FindFeeItemByID 根据 ID 查询收费项目
func (s *FeeService) FindFeeItemByID(ctx context.Context, id int64) (*model.FeeItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFeeItemNotFound
	}
	return item, nil
}

// CreateFeeItem 创建收费项目，初始为启用状态，单价必须为正
func (s *FeeService) CreateFeeItem(ctx context.Context, req dto.FeeItemRequest) (*model.FeeItem, error) {
	if !req.Price.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	item := &model.FeeItem{
		Name:        req.Name,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		Status:      model.FeeItemActive,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateFeeItem 更新收费项目（不改状态），单价必须为正
func (s *FeeService) UpdateFeeItem(ctx context.Context, id int64, req dto.FeeItemRequest) (*model.FeeItem, error) {
	if !req.Price.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	item, err := s.FindFeeItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = req.Name
	item.Unit = req.Unit
	item.Price = req.Price
	item.Description = req.Description
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteFeeItem 删除收费项目
func (s *FeeService) DeleteFeeItem(ctx context.Context, id int64) error {
	if _, err := s.FindFeeItemByID(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// ToggleFeeItemStatus 启用/停用切换
func (s *FeeService) ToggleFeeItemStatus(ctx context.Context, id int64) (*model.FeeItem, error) {
	item, err := s.FindFeeItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status == model.FeeItemActive {
		item.Status = model.FeeItemInactive
	} else {
		item.Status = model.FeeItemActive
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ==================== 批量生成账单 ====================

// GenerateBillsFromFeeItem 按收费项目为所有已入住住户批量生成账单
// 幂等：同一 (类型, 账期, 业主姓名) 三元组只生成一次，已存在则跳过；
// 全部已存在时返回 ErrAllBillsAlreadyExist，让调用方能区分「已生成过」与「没有住户」
func (s *FeeService) GenerateBillsFromFeeItem(ctx context.Context, feeItemID int64, billingPeriod string) ([]model.FeeBill, error) {
	feeItem, err := s.FindFeeItemByID(ctx, feeItemID)
	if err != nil {
		return nil, err
	}
	if feeItem.Status != model.FeeItemActive {
		return nil, ErrFeeItemInactive
	}
	if strings.TrimSpace(billingPeriod) == "" {
		return nil, ErrInvalidPeriod
	}

	// 只对已入住的住户计费，空置/迁出中/出租不生成
	residents, err := s.residentRepo.FindByStatus(ctx, model.ResidentOccupied)
	if err != nil {
		return nil, err
	}
	if len(residents) == 0 {
		return nil, ErrNoOccupiedResidents
	}

	var bills []model.FeeBill
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		billRepo := repository.NewFeeBillRepository(tx)

		for _, resident := range residents {
			exists, err := billRepo.ExistsByTriple(ctx, feeItem.Name, billingPeriod, resident.Name)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			bill := model.FeeBill{
				BillNumber:    generateBillNumber(),
				OwnerName:     resident.Name,
				Building:      resident.Address(),
				Type:          feeItem.Name,
				Amount:        calculateAmount(feeItem, &resident),
				BillingPeriod: billingPeriod,
				Status:        model.BillPending,
			}
			// 并发生成同一账期时，存在性检查可能刚好落在别人插入之前，
			// 唯一索引兜底，把竞态当作已生成处理。
			// 单条插入包进保存点：postgres 在唯一冲突后会把整个事务置为中止态，
			// 不回滚到保存点的话后续插入全部失败
			insertErr := tx.Transaction(func(tx *gorm.DB) error {
				return repository.NewFeeBillRepository(tx).Create(ctx, &bill)
			})
			if insertErr != nil {
				if errors.Is(insertErr, gorm.ErrDuplicatedKey) {
					logger.L.Warnw("账单已被并发生成，跳过",
						"type", feeItem.Name, "period", billingPeriod, "owner", resident.Name)
					continue
				}
				return insertErr
			}
			bills = append(bills, bill)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(bills) == 0 {
		return nil, ErrAllBillsAlreadyExist
	}
	return bills, nil
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// calculateAmount 计算账单金额
// 单位含 ㎡ 且住户面积可解析时按 面积 × 单价（四舍五入保留两位），否则取固定单价
func calculateAmount(feeItem *model.FeeItem, resident *model.Resident) decimal.Decimal {
	if feeItem.IsAreaBased() && resident.Area != "" {
		areaStr := nonNumeric.ReplaceAllString(resident.Area, "")
		area, err := decimal.NewFromString(areaStr)
		if err == nil {
			return feeItem.Price.Mul(area).Round(2)
		}
		// 面积解析失败时退回固定单价
	}
	return feeItem.Price
}

// ==================== 统计 ====================

// GetStatistics 费用统计，每次调用实时计算
// 本月判定：账期字符串以 "YYYY年M月" 为前缀（"2025年10月15日" 也算 10 月）
func (s *FeeService) GetStatistics(ctx context.Context) (*dto.FeeStatistics, error) {
	now := time.Now()
	currentMonth := monthLabel(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	allBills, err := s.billRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	allPayments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	monthlyReceivable := decimal.Zero // 本月应收：本月账期的账单总额，不论状态
	monthlyBillsPaid := decimal.Zero  // 本月账期中已缴费的部分，用于缴费率
	totalArrears := decimal.Zero      // 欠费总额：所有账期中未缴费的账单总额

	for _, bill := range allBills {
		if strings.HasPrefix(bill.BillingPeriod, currentMonth) {
			monthlyReceivable = monthlyReceivable.Add(bill.Amount)
			if bill.Status == model.BillPaid {
				monthlyBillsPaid = monthlyBillsPaid.Add(bill.Amount)
			}
		}
		if bill.Status != model.BillPaid {
			totalArrears = totalArrears.Add(bill.Amount)
		}
	}

	// 本月实收按缴费事件时间统计，与按账期统计的 monthlyBillsPaid 口径不同，
	// 差异是有意保留的：补缴上月账单计入本月实收，但不影响本月缴费率
	monthlyReceived := decimal.Zero
	for _, payment := range allPayments {
		if payment.Status != model.PaymentSuccess {
			continue
		}
		if payment.CreatedAt.Before(monthStart) || payment.CreatedAt.After(monthEnd) {
			continue
		}
		monthlyReceived = monthlyReceived.Add(payment.Amount)
	}

	// 缴费率 = 本月账期已缴 / 本月应收 × 100，应收为零时直接取 0
	paymentRate := 0.0
	if monthlyReceivable.IsPositive() {
		paymentRate, _ = monthlyBillsPaid.
			DivRound(monthlyReceivable, 4).
			Mul(decimal.NewFromInt(100)).
			Float64()
	}

	return &dto.FeeStatistics{
		MonthlyReceivable: monthlyReceivable,
		MonthlyReceived:   monthlyReceived,
		TotalArrears:      totalArrears,
		PaymentRate:       paymentRate,
	}, nil
}

// monthLabel 月份标签，如 "2025年10月"（月份无前导零）
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}
