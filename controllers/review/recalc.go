package reviewControllers

import (
	"math"

	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

type ratingSummary struct {
	Avg   float64
	Count int64
}

// RecalcRating recomputes the target's denormalized rating pair from its full
// review set and writes it back. A target with no reviews reports {0, 0}.
// Recomputing from scratch instead of adjusting a running sum keeps the pair
// correct under concurrent review edits and deletes; each write reflects a
// complete snapshot of the review set at read time.
func RecalcRating(tx *gorm.DB, targetType models.ReviewTarget, targetID string) error {
	var summary ratingSummary
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("target_type = ? AND target_id = ? AND rating >= 1", targetType, targetID).
		Scan(&summary).Error
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"rating_avg":   math.Round(summary.Avg*100) / 100,
		"rating_count": summary.Count,
	}

	if targetType == models.TargetProduct {
		return tx.Model(&models.Product{}).Where("id = ?", targetID).Updates(updates).Error
	}
	return tx.Model(&models.Seller{}).Where("id = ?", targetID).Updates(updates).Error
}
