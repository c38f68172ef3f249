package model

// UnitStatus 房屋状态
type UnitStatus string

const (
	UnitOccupied UnitStatus = "OCCUPIED"
	UnitVacant   UnitStatus = "VACANT"
)

// PropertyUnit 房屋台账
type PropertyUnit struct {
	BaseModel
	Building   string     `gorm:"size:50;not null" json:"building"`
	Unit       string     `gorm:"size:50;not null" json:"unit"`
	RoomNumber string     `gorm:"size:50;not null" json:"roomNumber"`
	Area       string     `gorm:"size:20" json:"area"`
	Owner      string     `gorm:"size:50" json:"owner"`
	Status     UnitStatus `gorm:"size:20;not null;default:VACANT" json:"status"`
}

func (PropertyUnit) TableName() string {
	return "property_units"
}
