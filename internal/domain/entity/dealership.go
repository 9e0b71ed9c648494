package entity

import (
	"time"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var dayOrdinals = map[DayOfWeek]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// Ordinal returns the display position of the day, Monday first.
// Unknown values sort last.
func (d DayOfWeek) Ordinal() int {
	if n, ok := dayOrdinals[d]; ok {
		return n
	}
	return len(dayOrdinals)
}

// DealershipInfo is a singleton-per-deployment record.
type DealershipInfo struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	WorkingHours []WorkingHour `json:"working_hours" gorm:"foreignKey:DealershipID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type WorkingHour struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	DealershipID string    `json:"dealership_id" gorm:"type:uuid;not null;index"`
	DayOfWeek    DayOfWeek `json:"day_of_week" gorm:"type:varchar(16);not null"`
	OpenTime     string    `json:"open_time"`
	CloseTime    string    `json:"close_time"`
	IsOpen       bool      `json:"is_open" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
