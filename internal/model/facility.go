package model

import "time"

// Facility 公共设施
type Facility struct {
	BaseModel
	Name            string     `gorm:"size:100;not null" json:"name"`
	Type            string     `gorm:"size:50;not null" json:"type"`
	Location        string     `gorm:"size:100;not null" json:"location"`
	Status          string     `gorm:"size:20;not null" json:"status"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
	NextMaintenance *time.Time `json:"nextMaintenance"`
	Responsible     string     `gorm:"size:50" json:"responsible"`
}

func (Facility) TableName() string {
	return "facilities"
}
