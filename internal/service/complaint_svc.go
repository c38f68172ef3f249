package service

import (
	"context"
	"time"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// ComplaintService 投诉处理服务
type ComplaintService struct {
	complaintRepo repository.ComplaintRepository
}

func NewComplaintService(complaintRepo repository.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

func (s *ComplaintService) FindAll(ctx context.Context) ([]model.Complaint, error) {
	return s.complaintRepo.FindAll(ctx)
}

func (s *ComplaintService) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}
	return complaint, nil
}

// Create 登记投诉，承诺 24 小时内反馈
func (s *ComplaintService) Create(ctx context.Context, req dto.ComplaintRequest) (*model.Complaint, error) {
	deadline := time.Now().Add(24 * time.Hour)
	complaint := &model.Complaint{
		OwnerName:        req.OwnerName,
		Phone:            req.Phone,
		Type:             req.Type,
		Description:      req.Description,
		Status:           model.ComplaintReceived,
		FeedbackDeadline: &deadline,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// UpdateStatus 更新投诉状态，处理人与回复按需覆盖
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, req dto.ComplaintUpdateRequest) (*model.Complaint, error) {
	complaint, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	complaint.Status = model.ComplaintStatus(req.Status)
	if req.ProcessedBy != nil {
		complaint.ProcessedBy = *req.ProcessedBy
	}
	if req.Reply != nil {
		complaint.Reply = *req.Reply
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}
