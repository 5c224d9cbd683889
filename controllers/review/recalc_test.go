package reviewControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Seller{}, &models.Product{}, &models.Review{}))
	return db
}

func createProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	p := &models.Product{SellerID: "s1", Name: "USB-C Hub", Price: 39.99}
	require.NoError(t, db.Create(p).Error)
	return p
}

func addReview(t *testing.T, db *gorm.DB, target models.ReviewTarget, targetID string, rating int) *models.Review {
	t.Helper()
	r := &models.Review{TargetType: target, TargetID: targetID, Rating: rating}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestRecalcRatingNoReviews(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)

	// pretend a stale pair is sitting on the product
	require.NoError(t, db.Model(p).Updates(map[string]interface{}{
		"rating_avg": 3.5, "rating_count": 7,
	}).Error)

	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, 0.0, got.RatingAvg)
	assert.Equal(t, 0, got.RatingCount)
}

func TestRecalcRatingAverageAndCount(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)

	addReview(t, db, models.TargetProduct, p.ID, 4)
	addReview(t, db, models.TargetProduct, p.ID, 5)
	third := addReview(t, db, models.TargetProduct, p.ID, 3)

	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, 4.0, got.RatingAvg)
	assert.Equal(t, 3, got.RatingCount)

	require.NoError(t, db.Delete(third).Error)
	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, 4.5, got.RatingAvg)
	assert.Equal(t, 2, got.RatingCount)
}

func TestRecalcRatingRoundsToTwoDecimals(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)

	addReview(t, db, models.TargetProduct, p.ID, 4)
	addReview(t, db, models.TargetProduct, p.ID, 4)
	addReview(t, db, models.TargetProduct, p.ID, 5)

	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, 4.33, got.RatingAvg)
	assert.Equal(t, 3, got.RatingCount)
}

func TestRecalcRatingIdempotent(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)
	addReview(t, db, models.TargetProduct, p.ID, 2)
	addReview(t, db, models.TargetProduct, p.ID, 5)

	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))
	var first models.Product
	require.NoError(t, db.First(&first, "id = ?", p.ID).Error)

	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))
	var second models.Product
	require.NoError(t, db.First(&second, "id = ?", p.ID).Error)

	assert.Equal(t, first.RatingAvg, second.RatingAvg)
	assert.Equal(t, first.RatingCount, second.RatingCount)
}

func TestRecalcRatingSellerTarget(t *testing.T) {
	db := setupDB(t)
	s := &models.Seller{Name: "Volt Traders"}
	require.NoError(t, db.Create(s).Error)

	addReview(t, db, models.TargetSeller, s.ID, 1)
	addReview(t, db, models.TargetSeller, s.ID, 4)

	require.NoError(t, RecalcRating(db, models.TargetSeller, s.ID))

	var got models.Seller
	require.NoError(t, db.First(&got, "id = ?", s.ID).Error)
	assert.Equal(t, 2.5, got.RatingAvg)
	assert.Equal(t, 2, got.RatingCount)
}

func TestRecalcRatingScopedToTarget(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)
	other := createProduct(t, db)

	addReview(t, db, models.TargetProduct, p.ID, 5)
	addReview(t, db, models.TargetProduct, other.ID, 1)
	// same id, different target type: must not count
	addReview(t, db, models.TargetSeller, p.ID, 1)

	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, 5.0, got.RatingAvg)
	assert.Equal(t, 1, got.RatingCount)
}
