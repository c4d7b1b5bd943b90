package models

import "time"

// Staff is seeded once from the configured roster and never edited by users.
type Staff struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

func (Staff) TableName() string {
	return "staff"
}
