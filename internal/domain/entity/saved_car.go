package entity

import (
	"time"
)

// SavedCar is the wishlist membership row. The (UserID, CarID) pair is
// unique; row existence is the wishlisted flag, there is no separate column.
type SavedCar struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_car"`
	CarID     string    `json:"car_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_car"`
	Car       Car       `json:"car" gorm:"foreignKey:CarID"`
	CreatedAt time.Time `json:"created_at"`
}
