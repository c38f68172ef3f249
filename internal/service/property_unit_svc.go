package service

import (
	"context"
	"strings"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// PropertyUnitService 房屋台账服务
type PropertyUnitService struct {
	unitRepo repository.PropertyUnitRepository
}

func NewPropertyUnitService(unitRepo repository.PropertyUnitRepository) *PropertyUnitService {
	return &PropertyUnitService{unitRepo: unitRepo}
}

// Search 关键字加状态组合检索
func (s *PropertyUnitService) Search(ctx context.Context, keyword, status string) ([]model.PropertyUnit, error) {
	return s.unitRepo.List(ctx, strings.TrimSpace(keyword), model.UnitStatus(strings.ToUpper(strings.TrimSpace(status))))
}

func (s *PropertyUnitService) GetByID(ctx context.Context, id int64) (*model.PropertyUnit, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}
	return unit, nil
}

func (s *PropertyUnitService) Create(ctx context.Context, unit *model.PropertyUnit) error {
	return s.unitRepo.Create(ctx, unit)
}

func (s *PropertyUnitService) Update(ctx context.Context, id int64, input *model.PropertyUnit) (*model.PropertyUnit, error) {
	unit, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.Building = input.Building
	unit.Unit = input.Unit
	unit.RoomNumber = input.RoomNumber
	unit.Area = input.Area
	unit.Owner = input.Owner
	if input.Status != "" {
		unit.Status = input.Status
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *PropertyUnitService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.unitRepo.Delete(ctx, id)
}
