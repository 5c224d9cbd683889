package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/arslan020/techxchange/controllers/cart"
	"github.com/arslan020/techxchange/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// Checkout freezes the caller's cart into an immutable order and empties the
// cart. Name, price and image come from the cart snapshot; sellerId comes
// from a fresh product lookup so revenue is attributed to the seller of
// record even if the product changed hands after being added to the cart.
// The order insert and the cart clear share one transaction, so a crash
// can't leave a confirmed order next to a still-full cart.
func Checkout(db *gorm.DB, userID string) (*models.Order, error) {
	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartControllers.GetCart(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		} else if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		var subtotal float64
		for _, it := range cart.Items {
			var sellerID string
			var product models.Product
			err := tx.Select("seller_id").First(&product, "id = ?", it.ProductID).Error
			if err == nil {
				sellerID = product.SellerID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// deleted product: line is kept, sellerId stays empty

			items = append(items, models.OrderItem{
				ProductID: it.ProductID,
				SellerID:  sellerID,
				Name:      it.Name,
				Price:     it.Price,
				Image:     it.Image,
				Qty:       it.Qty,
			})
			subtotal += it.Price * float64(it.Qty)
		}

		o := models.Order{
			UserID:   userID,
			Items:    items,
			Subtotal: subtotal,
			Status:   models.OrderStatusConfirmed,
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := cartControllers.Touch(tx, cart); err != nil {
			return err
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// POST /api/orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		order, err := Checkout(db, userID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			if errors.Is(err, cartControllers.ErrVersionConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Cart was modified, retry"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{
			"_id":       order.ID,
			"subtotal":  order.Subtotal,
			"status":    order.Status,
			"createdAt": order.CreatedAt,
		})
	}
}

// GET /api/orders/:id — 404 unless the order belongs to the caller.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders — the caller's orders, newest first.
func ListMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
