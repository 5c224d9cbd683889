package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is embedded into Seller; all fields are optional.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Site  string `json:"site,omitempty"`
}

// Seller is a storefront profile. RatingAvg and RatingCount are derived
// values, written only by the rating recalculation.
type Seller struct {
	ID          string    `gorm:"primaryKey" json:"_id"`
	Name        string    `gorm:"not null" json:"name"`
	Location    string    `json:"location,omitempty"`
	Contact     Contact   `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	RatingAvg   float64   `json:"ratingAvg"`
	RatingCount int       `json:"ratingCount"`
	OwnerUserID string    `json:"ownerUserId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
