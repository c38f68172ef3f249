package model

import "time"

// ResidentStatus 住户入住状态
type ResidentStatus string

const (
	ResidentOccupied  ResidentStatus = "OCCUPIED"   // 已入住
	ResidentVacant    ResidentStatus = "VACANT"     // 空置
	ResidentMovingOut ResidentStatus = "MOVING_OUT" // 迁出中
	ResidentRented    ResidentStatus = "RENTED"     // 出租
)

// Resident 住户档案
// 既是账单生成的计费单元，也是用户档案关联的目标
type Resident struct {
	BaseModel
	Name       string         `gorm:"size:50;not null" json:"name"`
	Phone      string         `gorm:"size:20" json:"phone"`
	Building   string         `gorm:"size:50;not null" json:"building"`
	Unit       string         `gorm:"size:50;not null" json:"unit"`
	RoomNumber string         `gorm:"size:50;not null" json:"roomNumber"`
	Area       string         `gorm:"size:20" json:"area"` // 如 "120㎡"，面积计费时解析数字部分
	Status     ResidentStatus `gorm:"size:20;not null;default:OCCUPIED" json:"status"`
	MoveInDate *time.Time     `json:"moveInDate"`
}

func (Resident) TableName() string {
	return "residents"
}

// Address 楼栋/单元/房号拼接，账单的 building 字段使用该串
func (r *Resident) Address() string {
	return r.Building + " " + r.Unit + " " + r.RoomNumber
}
