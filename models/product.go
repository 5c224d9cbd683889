package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID          string                      `gorm:"primaryKey" json:"_id"`
	SellerID    string                      `gorm:"not null;index" json:"sellerId"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description,omitempty"`
	Category    string                      `gorm:"index" json:"category,omitempty"`
	Price       float64                     `gorm:"not null" json:"price"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Stock       int                         `json:"stock"`
	Condition   string                      `gorm:"type:VARCHAR(15);default:'new'" json:"condition"`
	Status      string                      `gorm:"type:VARCHAR(12);default:'published'" json:"status"`
	RatingAvg   float64                     `json:"ratingAvg"`
	RatingCount int                         `json:"ratingCount"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FirstImage is what cart line items snapshot.
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
