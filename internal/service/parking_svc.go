package service

import (
	"context"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// ParkingService 车位台账服务
type ParkingService struct {
	parkingRepo repository.ParkingSpaceRepository
}

func NewParkingService(parkingRepo repository.ParkingSpaceRepository) *ParkingService {
	return &ParkingService{parkingRepo: parkingRepo}
}

func (s *ParkingService) List(ctx context.Context, status string) ([]model.ParkingSpace, error) {
	return s.parkingRepo.List(ctx, status)
}

func (s *ParkingService) GetByID(ctx context.Context, id int64) (*model.ParkingSpace, error) {
	space, err := s.parkingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, ErrParkingNotFound
	}
	return space, nil
}

func (s *ParkingService) Create(ctx context.Context, space *model.ParkingSpace) error {
	return s.parkingRepo.Create(ctx, space)
}

func (s *ParkingService) Update(ctx context.Context, id int64, input *model.ParkingSpace) (*model.ParkingSpace, error) {
	space, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	space.SpaceNumber = input.SpaceNumber
	space.Area = input.Area
	space.Type = input.Type
	space.Owner = input.Owner
	space.Building = input.Building
	space.PlateNumber = input.PlateNumber
	space.Status = input.Status
	space.StartDate = input.StartDate
	space.EndDate = input.EndDate

	if err := s.parkingRepo.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *ParkingService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.parkingRepo.Delete(ctx, id)
}
