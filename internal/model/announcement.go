package model

import "time"

// Announcement 公告
type Announcement struct {
	BaseModel
	Title       string     `gorm:"size:150;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	TargetScope string     `gorm:"size:50" json:"targetScope"`
	PublishAt   *time.Time `json:"publishAt"`
}

func (Announcement) TableName() string {
	return "announcements"
}
