package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
	"github.com/arslan020/techxchange/utils"
)

type CreateReviewInput struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"omitempty,max=2000"`
}

type UpdateReviewInput struct {
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text   *string `json:"text" binding:"omitempty,max=2000"`
}

// POST /api/products/:id/reviews  and  /api/sellers/:id/reviews
//
// Every successful review write recomputes the target's rating inside the
// same transaction, so the denormalized pair never observes a torn set.
func CreateReview(db *gorm.DB, target models.ReviewTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
			return
		}

		review := models.Review{
			TargetType: target,
			TargetID:   targetID,
			UserID:     c.GetString("user_id"),
			Rating:     input.Rating,
			Text:       input.Text,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			return RecalcRating(tx, target, targetID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /api/products/:id/reviews  and  /api/sellers/:id/reviews
func ListReviews(db *gorm.DB, target models.ReviewTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		p := utils.ParsePagination(c)

		scoped := db.Model(&models.Review{}).
			Where("target_type = ? AND target_id = ?", target, targetID)

		var total int64
		if err := scoped.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count reviews"})
			return
		}

		var items []models.Review
		if err := scoped.Order("created_at DESC").
			Offset(p.Skip).Limit(p.Limit).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"page": p.Page, "limit": p.Limit, "total": total, "items": items})
	}
}

// PATCH /api/products/:id/reviews/:rid  and  /api/sellers/:id/reviews/:rid
func UpdateReview(db *gorm.DB, target models.ReviewTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		reviewID := c.Param("rid")

		var input UpdateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
			return
		}

		var review models.Review
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ? AND target_type = ? AND target_id = ?", reviewID, target, targetID).
				First(&review).Error; err != nil {
				return err
			}
			if input.Rating != nil {
				review.Rating = *input.Rating
			}
			if input.Text != nil {
				review.Text = *input.Text
			}
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
			return RecalcRating(tx, target, targetID)
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /api/products/:id/reviews/:rid  and  /api/sellers/:id/reviews/:rid
func DeleteReview(db *gorm.DB, target models.ReviewTarget) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		reviewID := c.Param("rid")

		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Where("id = ? AND target_type = ? AND target_id = ?", reviewID, target, targetID).
				Delete(&models.Review{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return RecalcRating(tx, target, targetID)
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
