package model

// Vehicle 车辆
type Vehicle struct {
	BaseModel
	OwnerName    string `gorm:"size:50;not null" json:"ownerName"`
	Building     string `gorm:"size:50;not null" json:"building"`
	PlateNumber  string `gorm:"size:20;not null" json:"plateNumber"`
	Brand        string `gorm:"size:50" json:"brand"`
	ParkingSpace string `gorm:"size:50" json:"parkingSpace"`
	Type         string `gorm:"size:30" json:"type"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
