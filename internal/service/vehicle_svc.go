package service

import (
	"context"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// VehicleService 车辆登记服务
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// List 车牌号模糊检索，关键字为空时返回全部
func (s *VehicleService) List(ctx context.Context, plateNumber string) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx, plateNumber)
}

func (s *VehicleService) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *VehicleService) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *VehicleService) Update(ctx context.Context, id int64, input *model.Vehicle) (*model.Vehicle, error) {
	vehicle, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vehicle.OwnerName = input.OwnerName
	vehicle.Building = input.Building
	vehicle.PlateNumber = input.PlateNumber
	vehicle.Brand = input.Brand
	vehicle.ParkingSpace = input.ParkingSpace
	vehicle.Type = input.Type

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}
