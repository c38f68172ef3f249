package service

import (
	"context"

	"github.com/shopspring/decimal"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// DashboardService 工作台汇总服务
type DashboardService struct {
	residentRepo  repository.ResidentRepository
	repairRepo    repository.RepairOrderRepository
	complaintRepo repository.ComplaintRepository
	billRepo      repository.FeeBillRepository
	unitRepo      repository.PropertyUnitRepository
}

func NewDashboardService(
	residentRepo repository.ResidentRepository,
	repairRepo repository.RepairOrderRepository,
	complaintRepo repository.ComplaintRepository,
	billRepo repository.FeeBillRepository,
	unitRepo repository.PropertyUnitRepository,
) *DashboardService {
	return &DashboardService{
		residentRepo:  residentRepo,
		repairRepo:    repairRepo,
		complaintRepo: complaintRepo,
		billRepo:      billRepo,
		unitRepo:      unitRepo,
	}
}

// GetSummary 汇总住户、工单、投诉、收入和两个比率
func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	totalResidents, err := s.residentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	pendingRepair, err := s.repairRepo.CountByStatus(ctx, model.RepairPending)
	if err != nil {
		return nil, err
	}
	inProgressRepair, err := s.repairRepo.CountByStatus(ctx, model.RepairInProgress)
	if err != nil {
		return nil, err
	}

	receivedComplaint, err := s.complaintRepo.CountByStatus(ctx, model.ComplaintReceived)
	if err != nil {
		return nil, err
	}
	processingComplaint, err := s.complaintRepo.CountByStatus(ctx, model.ComplaintProcessing)
	if err != nil {
		return nil, err
	}

	monthlyIncome, err := s.billRepo.SumAmountByStatus(ctx, model.BillPaid)
	if err != nil {
		return nil, err
	}

	totalUnits, err := s.unitRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	occupiedUnits, err := s.unitRepo.CountByStatus(ctx, model.UnitOccupied)
	if err != nil {
		return nil, err
	}

	totalBills, err := s.billRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	paidBills, err := s.billRepo.CountByStatus(ctx, model.BillPaid)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		TotalResidents:    totalResidents,
		PendingRepairs:    pendingRepair + inProgressRepair,
		PendingComplaints: receivedComplaint + processingComplaint,
		MonthlyIncome:     monthlyIncome,
		OccupancyRate:     rate(occupiedUnits, totalUnits),
		PaymentRate:       rate(paidBills, totalBills),
	}, nil
}

// rate 百分比，保留两位小数，分母为零时返回 0
func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	r := decimal.NewFromInt(part).Div(decimal.NewFromInt(total)).Mul(decimal.NewFromInt(100))
	f, _ := r.Round(2).Float64()
	return f
}
