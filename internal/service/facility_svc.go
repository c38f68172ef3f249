package service

import (
	"context"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// FacilityService 公共设施台账服务
type FacilityService struct {
	facilityRepo repository.FacilityRepository
}

func NewFacilityService(facilityRepo repository.FacilityRepository) *FacilityService {
	return &FacilityService{facilityRepo: facilityRepo}
}

func (s *FacilityService) FindAll(ctx context.Context) ([]model.Facility, error) {
	return s.facilityRepo.FindAll(ctx)
}

func (s *FacilityService) GetByID(ctx context.Context, id int64) (*model.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}
	return facility, nil
}

func (s *FacilityService) Create(ctx context.Context, facility *model.Facility) error {
	return s.facilityRepo.Create(ctx, facility)
}

func (s *FacilityService) Update(ctx context.Context, id int64, input *model.Facility) (*model.Facility, error) {
	facility, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facility.Name = input.Name
	facility.Type = input.Type
	facility.Location = input.Location
	facility.Status = input.Status
	facility.LastMaintenance = input.LastMaintenance
	facility.NextMaintenance = input.NextMaintenance
	facility.Responsible = input.Responsible

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *FacilityService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.facilityRepo.Delete(ctx, id)
}
