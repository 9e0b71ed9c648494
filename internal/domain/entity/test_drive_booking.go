package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsActive reports whether a booking still counts against the one-active-
// booking-per-pair rule. COMPLETED bookings stay active so a finished test
// drive is not silently rebookable.
func (s BookingStatus) IsActive() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

type TestDriveBooking struct {
	ID          string        `json:"id" gorm:"type:uuid;primaryKey"`
	CarID       string        `json:"car_id" gorm:"type:uuid;not null;index:idx_booking_car_user"`
	UserID      string        `json:"user_id" gorm:"type:uuid;not null;index:idx_booking_car_user"`
	Car         Car           `json:"car" gorm:"foreignKey:CarID"`
	BookingDate time.Time     `json:"booking_date" gorm:"type:date;not null"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(16);not null;default:PENDING"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
