package model

import "time"

// ParkingSpace 车位
type ParkingSpace struct {
	BaseModel
	SpaceNumber string     `gorm:"size:50;not null" json:"spaceNumber"`
	Area        string     `gorm:"size:50" json:"area"`
	Type        string     `gorm:"size:50" json:"type"`
	Owner       string     `gorm:"size:100" json:"owner"`
	Building    string     `gorm:"size:100" json:"building"`
	PlateNumber string     `gorm:"size:50" json:"plateNumber"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

func (ParkingSpace) TableName() string {
	return "parking_spaces"
}
