package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

// GET /api/admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products, sellers, reviews int64

		if err := db.Model(&models.Product{}).Count(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if err := db.Model(&models.Seller{}).Count(&sellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count sellers"})
			return
		}
		if err := db.Model(&models.Review{}).Count(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":  products,
			"sellers":   sellers,
			"reviews":   reviews,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
