package metaControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

type priceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var suggestedPriceBuckets = []float64{0, 50, 100, 250, 500, 1000, 2000}

// GET /api/meta/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Where("category <> ''").
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// GET /api/meta/filters
func GetFilters(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r priceRange
		if err := db.Model(&models.Product{}).
			Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max").
			Where("price >= 0").
			Scan(&r).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch price range"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"priceRange":            r,
			"suggestedPriceBuckets": suggestedPriceBuckets,
		})
	}
}
