package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart holds one user's in-progress selection. Line items snapshot product
// fields at add-time, so the cart view never needs a product join.
// Version backs the conditional write that serializes concurrent mutations.
type Cart struct {
	ID        string     `gorm:"primaryKey" json:"_id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"userId"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Version   int        `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	CartID    string  `gorm:"index" json:"-"`
	ProductID string  `gorm:"not null" json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"` // always >= 1 once stored
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
