package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const OrderStatusConfirmed OrderStatus = "confirmed"

// Order is a frozen receipt: written once at checkout, never updated.
type Order struct {
	ID        string      `gorm:"primaryKey" json:"_id"`
	UserID    string      `gorm:"not null;index" json:"userId"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal  float64     `gorm:"not null" json:"subtotal"`
	Status    OrderStatus `gorm:"type:VARCHAR(12);default:'confirmed'" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem carries the cart snapshot (name/price/image) plus the seller of
// record, resolved from the live product at checkout time. SellerID is empty
// when the product was deleted between add-to-cart and checkout.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `gorm:"not null" json:"productId"`
	SellerID  string  `json:"sellerId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
