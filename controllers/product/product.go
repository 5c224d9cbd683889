package productControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
	"github.com/arslan020/techxchange/utils"
)

type CreateProductInput struct {
	SellerID    string   `json:"sellerId" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Images      []string `json:"images"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Condition   string   `json:"condition" binding:"omitempty,oneof=new used refurbished"`
	Status      string   `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	Images      *[]string `json:"images"`
	Stock       *int      `json:"stock" binding:"omitempty,gte=0"`
	Condition   *string   `json:"condition" binding:"omitempty,oneof=new used refurbished"`
	Status      *string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// sortColumns whitelists the ?sort=field:dir fields.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"price":     "price",
	"ratingAvg": "rating_avg",
	"name":      "name",
}

func parseSort(input string) string {
	field, dir := "created_at", "DESC"
	if input != "" {
		parts := strings.SplitN(input, ":", 2)
		if col, ok := sortColumns[strings.TrimSpace(parts[0])]; ok {
			field = col
		}
		if len(parts) == 2 {
			d := strings.ToLower(strings.TrimSpace(parts[1]))
			if d == "asc" || d == "1" {
				dir = "ASC"
			}
		}
	}
	return fmt.Sprintf("%s %s", field, dir)
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
			return
		}

		product := models.Product{
			SellerID:    input.SellerID,
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			Price:       *input.Price,
			Images:      datatypes.NewJSONSlice(input.Images),
			Condition:   input.Condition,
			Status:      input.Status,
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if product.Condition == "" {
			product.Condition = "new"
		}
		if product.Status == "" {
			product.Status = "published"
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GET /api/products
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.ParsePagination(c)

		query := db.Model(&models.Product{})

		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if seller := c.Query("seller"); seller != "" {
			query = query.Where("seller_id = ?", seller)
		}
		if minPrice := c.Query("minPrice"); minPrice != "" {
			mp, err := strconv.ParseFloat(minPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPrice := c.Query("maxPrice"); maxPrice != "" {
			mp, err := strconv.ParseFloat(maxPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var items []models.Product
		if err := query.Order(parseSort(c.Query("sort"))).
			Offset(p.Skip).Limit(p.Limit).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"page": p.Page, "limit": p.Limit, "total": total, "items": items})
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Images != nil {
			product.Images = datatypes.NewJSONSlice(*input.Images)
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Condition != nil {
			product.Condition = *input.Condition
		}
		if input.Status != nil {
			product.Status = *input.Status
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
