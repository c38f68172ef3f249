package service

import (
	"context"
	"time"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// RepairService 报修工单服务
type RepairService struct {
	repairRepo repository.RepairOrderRepository
}

func NewRepairService(repairRepo repository.RepairOrderRepository) *RepairService {
	return &RepairService{repairRepo: repairRepo}
}

func (s *RepairService) FindAll(ctx context.Context) ([]model.RepairOrder, error) {
	return s.repairRepo.FindAll(ctx)
}

func (s *RepairService) GetByID(ctx context.Context, id int64) (*model.RepairOrder, error) {
	order, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrRepairNotFound
	}
	return order, nil
}

// Create 新建工单，自动生成单号，初始状态待处理
func (s *RepairService) Create(ctx context.Context, req dto.RepairOrderRequest) (*model.RepairOrder, error) {
	order := &model.RepairOrder{
		OrderNumber: generateRepairNumber(),
		OwnerName:   req.OwnerName,
		Phone:       req.Phone,
		Type:        req.Type,
		Description: req.Description,
		Building:    req.Building,
		Unit:        req.Unit,
		RoomNumber:  req.RoomNumber,
		Priority:    model.PriorityNormal,
		Status:      model.RepairPending,
	}
	if req.Priority != "" {
		order.Priority = model.RepairPriority(req.Priority)
	}
	if err := s.repairRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus 工单流转
// 进入处理中记录开始时间，完成时记录完工时间
func (s *RepairService) UpdateStatus(ctx context.Context, id int64, req dto.RepairStatusUpdateRequest) (*model.RepairOrder, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		status := model.RepairStatus(req.Status)
		order.Status = status
		now := time.Now()
		if status == model.RepairInProgress {
			order.StartedAt = &now
		}
		if status == model.RepairCompleted {
			order.FinishedAt = &now
		}
	}
	if req.AssignedWorker != nil {
		order.AssignedWorker = *req.AssignedWorker
	}
	if req.EvaluationScore != nil {
		order.EvaluationScore = req.EvaluationScore
		order.EvaluationRemark = req.EvaluationRemark
	}

	if err := s.repairRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
