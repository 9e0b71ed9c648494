package entity

import (
	"time"
)

// User is created lazily on a caller's first authenticated interaction.
// ExternalID is the stable subject issued by the identity provider.
type User struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	ExternalID string    `json:"external_id" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
