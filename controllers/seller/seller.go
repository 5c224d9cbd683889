package sellerControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
	"github.com/arslan020/techxchange/utils"
)

type CreateSellerInput struct {
	Name     string         `json:"name" binding:"required"`
	Location string         `json:"location"`
	Contact  models.Contact `json:"contact"`
}

type UpdateSellerInput struct {
	Name     *string         `json:"name"`
	Location *string         `json:"location"`
	Contact  *models.Contact `json:"contact"`
}

// POST /api/sellers
func CreateSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateSellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
			return
		}

		seller := models.Seller{
			Name:        input.Name,
			Location:    input.Location,
			Contact:     input.Contact,
			OwnerUserID: c.GetString("user_id"),
		}
		if err := db.Create(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seller"})
			return
		}
		c.JSON(http.StatusCreated, seller)
	}
}

// GET /api/sellers
func ListSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.ParsePagination(c)

		query := db.Model(&models.Seller{})
		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			query = query.Where("name ILIKE ? OR location ILIKE ?", like, like)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count sellers"})
			return
		}

		var items []models.Seller
		if err := query.Order("created_at DESC").
			Offset(p.Skip).Limit(p.Limit).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"page": p.Page, "limit": p.Limit, "total": total, "items": items})
	}
}

// GET /api/sellers/:id
func GetSellerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seller models.Seller
		if err := db.First(&seller, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

// PUT /api/sellers/:id
func UpdateSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seller models.Seller
		if err := db.First(&seller, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			return
		}

		var input UpdateSellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
			return
		}

		if input.Name != nil {
			seller.Name = *input.Name
		}
		if input.Location != nil {
			seller.Location = *input.Location
		}
		if input.Contact != nil {
			seller.Contact = *input.Contact
		}

		if err := db.Save(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seller"})
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

// DELETE /api/sellers/:id
func DeleteSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&models.Seller{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete seller"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
