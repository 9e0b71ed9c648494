package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusUnavailable CarStatus = "UNAVAILABLE"
	CarStatusSold        CarStatus = "SOLD"
)

type Car struct {
	ID           string          `json:"id" gorm:"type:uuid;primaryKey"`
	Make         string          `json:"make" gorm:"not null;index"`
	Model        string          `json:"model" gorm:"not null"`
	Year         int             `json:"year" gorm:"not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Mileage      int             `json:"mileage"`
	Color        string          `json:"color"`
	FuelType     string          `json:"fuel_type" gorm:"index"`
	Transmission string          `json:"transmission"`
	BodyType     string          `json:"body_type" gorm:"index"`
	Seats        *int            `json:"seats,omitempty"`
	Description  string          `json:"description"`
	Status       CarStatus       `json:"status" gorm:"type:varchar(16);not null;default:AVAILABLE;index"`
	Featured     bool            `json:"featured" gorm:"not null;default:false"`
	Images       []string        `json:"images" gorm:"serializer:json"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
