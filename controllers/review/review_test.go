package reviewControllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

func perform(t *testing.T, handler gin.HandlerFunc, method, body string, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("user_id", "u1")
	handler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func productRating(t *testing.T, db *gorm.DB, id string) (float64, int) {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, "id = ?", id).Error)
	return p.RatingAvg, p.RatingCount
}

func TestCreateReviewUpdatesTargetRating(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)

	w := perform(t, CreateReview(db, models.TargetProduct), "POST",
		`{"rating":4,"text":"solid"}`, gin.Params{{Key: "id", Value: p.ID}})
	require.Equal(t, 201, w.Code)

	avg, count := productRating(t, db, p.ID)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, count)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)

	w := perform(t, CreateReview(db, models.TargetProduct), "POST",
		`{"rating":6}`, gin.Params{{Key: "id", Value: p.ID}})
	assert.Equal(t, 400, w.Code)

	w = perform(t, CreateReview(db, models.TargetProduct), "POST",
		`{"rating":0}`, gin.Params{{Key: "id", Value: p.ID}})
	assert.Equal(t, 400, w.Code)

	avg, count := productRating(t, db, p.ID)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestUpdateReviewRecomputesRating(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)
	r := addReview(t, db, models.TargetProduct, p.ID, 2)
	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	w := perform(t, UpdateReview(db, models.TargetProduct), "PATCH",
		`{"rating":5}`, gin.Params{{Key: "id", Value: p.ID}, {Key: "rid", Value: r.ID}})
	require.Equal(t, 200, w.Code)

	avg, count := productRating(t, db, p.ID)
	assert.Equal(t, 5.0, avg)
	assert.Equal(t, 1, count)
}

func TestUpdateReviewWrongTarget(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)
	other := createProduct(t, db)
	r := addReview(t, db, models.TargetProduct, other.ID, 3)

	w := perform(t, UpdateReview(db, models.TargetProduct), "PATCH",
		`{"rating":5}`, gin.Params{{Key: "id", Value: p.ID}, {Key: "rid", Value: r.ID}})
	assert.Equal(t, 404, w.Code)
}

func TestDeleteReviewRecomputesRating(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)
	addReview(t, db, models.TargetProduct, p.ID, 4)
	low := addReview(t, db, models.TargetProduct, p.ID, 2)
	require.NoError(t, RecalcRating(db, models.TargetProduct, p.ID))

	w := perform(t, DeleteReview(db, models.TargetProduct), "DELETE",
		"", gin.Params{{Key: "id", Value: p.ID}, {Key: "rid", Value: low.ID}})
	require.Equal(t, 204, w.Code)

	avg, count := productRating(t, db, p.ID)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, count)
}

func TestDeleteReviewMissing(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db)

	w := perform(t, DeleteReview(db, models.TargetProduct), "DELETE",
		"", gin.Params{{Key: "id", Value: p.ID}, {Key: "rid", Value: "nope"}})
	assert.Equal(t, 404, w.Code)
}
