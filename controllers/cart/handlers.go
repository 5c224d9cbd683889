package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       *int   `json:"qty" binding:"omitempty,min=1"`
}

type UpdateItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       *int   `json:"qty" binding:"required"`
}

// emptyCart matches the storefront's synthesized shape for users without a
// cart document.
func emptyCart(userID string) gin.H {
	return gin.H{"userId": userID, "items": []models.CartItem{}}
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
	case errors.Is(err, ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Cart was modified, retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}

// GET /api/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := GetCart(db, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, emptyCart(userID))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /api/cart/add
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		qty := 1
		if input.Qty != nil {
			qty = *input.Qty
		}

		cart, err := AddItem(db, userID, input.ProductID, qty)
		if err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PATCH /api/cart/item
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateItem(db, userID, input.ProductID, *input.Qty)
		if err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/item/:productId
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := RemoveItem(db, userID, c.Param("productId"))
		if err != nil {
			writeCartError(c, err)
			return
		}
		if cart == nil {
			c.JSON(http.StatusOK, emptyCart(userID))
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := ClearCart(db, userID); err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
