package dto

import "time"

type BookingListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Time          string    `json:"time"`
	DurationMin   int       `json:"duration_min"`
	Service       string    `json:"service"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
}

type StaffDayDTO struct {
	StaffID   uint             `json:"staff_id"`
	StaffName string           `json:"staff_name"`
	Bookings  []BookingListDTO `json:"bookings"`
}

type SlotDTO struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Time      string    `json:"time"`
	StaffID   uint      `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	Label     string    `json:"label"`
}
