package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewTarget string

const (
	TargetProduct ReviewTarget = "product"
	TargetSeller  ReviewTarget = "seller"
)

// Review points at either a Product or a Seller, selected by TargetType.
// Nothing enforces one review per user per target.
type Review struct {
	ID         string       `gorm:"primaryKey" json:"_id"`
	TargetType ReviewTarget `gorm:"type:VARCHAR(10);not null;index:idx_reviews_target" json:"targetType"`
	TargetID   string       `gorm:"not null;index:idx_reviews_target" json:"targetId"`
	UserID     string       `json:"userId,omitempty"`
	Rating     int          `gorm:"not null" json:"rating"` // 1..5
	Text       string       `json:"text,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
