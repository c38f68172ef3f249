package service

import (
	"context"
	"time"

	"property_mgmt_v1/internal/api/dto"
	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// ResidentService 住户档案服务
type ResidentService struct {
	residentRepo repository.ResidentRepository
}

func NewResidentService(residentRepo repository.ResidentRepository) *ResidentService {
	return &ResidentService{residentRepo: residentRepo}
}

// Search 分页检索住户
func (s *ResidentService) Search(ctx context.Context, query dto.ResidentQuery) ([]model.Resident, int64, error) {
	return s.residentRepo.List(ctx, repository.ResidentFilter{
		Name:     query.Name,
		Building: query.Building,
		Status:   model.ResidentStatus(query.Status),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}

func (s *ResidentService) GetByID(ctx context.Context, id int64) (*model.Resident, error) {
	resident, err := s.residentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}
	return resident, nil
}

// Create 建档，未填入住日期时取当天
func (s *ResidentService) Create(ctx context.Context, req dto.ResidentRequest) (*model.Resident, error) {
	resident := &model.Resident{}
	if err := applyResidentRequest(req, resident); err != nil {
		return nil, err
	}
	if resident.MoveInDate == nil {
		now := time.Now()
		resident.MoveInDate = &now
	}
	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *ResidentService) Update(ctx context.Context, id int64, req dto.ResidentRequest) (*model.Resident, error) {
	resident, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyResidentRequest(req, resident); err != nil {
		return nil, err
	}
	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *ResidentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.residentRepo.Delete(ctx, id)
}

func applyResidentRequest(req dto.ResidentRequest, resident *model.Resident) error {
	resident.Name = req.Name
	resident.Phone = req.Phone
	resident.Building = req.Building
	resident.Unit = req.Unit
	resident.RoomNumber = req.RoomNumber
	resident.Area = req.Area
	if req.Status != "" {
		resident.Status = model.ResidentStatus(req.Status)
	}
	if req.MoveInDate != "" {
		date, err := time.ParseInLocation("2006-01-02", req.MoveInDate, time.Local)
		if err != nil {
			return ErrInvalidMoveInDate
		}
		resident.MoveInDate = &date
	}
	return nil
}
