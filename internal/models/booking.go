package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID uint  `gorm:"index:idx_bookings_staff_day,priority:1;not null" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Day is derived from StartTime in the business location (YYYY-MM-DD).
	Day string `gorm:"size:10;index:idx_bookings_staff_day,priority:2;not null" json:"day"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Service       string `gorm:"size:100;not null" json:"service"`
	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	CreatedAt time.Time `json:"created_at"`
}

func (b Booking) DurationMin() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Minute)
}
