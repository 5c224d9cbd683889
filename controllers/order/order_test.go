package orderControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	cartControllers "github.com/arslan020/techxchange/controllers/cart"
	"github.com/arslan020/techxchange/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Seller{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, sellerID string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{
		SellerID: sellerID,
		Name:     "charger",
		Price:    price,
		Images:   datatypes.NewJSONSlice([]string{"charger.jpg"}),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestCheckoutWithoutCart(t *testing.T) {
	db := setupDB(t)

	_, err := Checkout(db, "u1")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, int64(0), orderCount(t, db))
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, cartControllers.ClearCart(db, "u1")) // creates an empty cart

	_, err := Checkout(db, "u1")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, int64(0), orderCount(t, db))
}

func TestCheckoutFreezesCart(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db, "seller-1", 10.00)

	_, err := cartControllers.AddItem(db, "u1", p.ID, 2)
	require.NoError(t, err)

	order, err := Checkout(db, "u1")
	require.NoError(t, err)

	assert.Equal(t, 20.00, order.Subtotal)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, p.ID, item.ProductID)
	assert.Equal(t, "seller-1", item.SellerID)
	assert.Equal(t, "charger", item.Name)
	assert.Equal(t, 10.00, item.Price)
	assert.Equal(t, 2, item.Qty)

	cart, err := cartControllers.GetCart(db, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutSubtotalAcrossLines(t *testing.T) {
	db := setupDB(t)
	p1 := createProduct(t, db, "seller-1", 10.00)
	p2 := createProduct(t, db, "seller-2", 2.50)

	_, err := cartControllers.AddItem(db, "u1", p1.ID, 2)
	require.NoError(t, err)
	_, err = cartControllers.AddItem(db, "u1", p2.ID, 4)
	require.NoError(t, err)

	order, err := Checkout(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30.00, order.Subtotal)
	assert.Len(t, order.Items, 2)
}

func TestCheckoutUsesCartPriceNotLivePrice(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db, "seller-1", 10.00)

	_, err := cartControllers.AddItem(db, "u1", p.ID, 1)
	require.NoError(t, err)

	// price hike after add-to-cart must not affect the order
	require.NoError(t, db.Model(p).Update("price", 99.00).Error)

	order, err := Checkout(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10.00, order.Subtotal)
	assert.Equal(t, 10.00, order.Items[0].Price)
}

func TestCheckoutDeletedProductKeepsLine(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db, "seller-1", 15.00)

	_, err := cartControllers.AddItem(db, "u1", p.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Delete(p).Error)

	order, err := Checkout(db, "u1")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "", order.Items[0].SellerID)
	assert.Equal(t, 15.00, order.Subtotal)
}

func TestCheckoutOrderIsPersisted(t *testing.T) {
	db := setupDB(t)
	p := createProduct(t, db, "seller-1", 7.00)

	_, err := cartControllers.AddItem(db, "u1", p.ID, 3)
	require.NoError(t, err)

	order, err := Checkout(db, "u1")
	require.NoError(t, err)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, 21.00, stored.Subtotal)
	assert.Len(t, stored.Items, 1)
	assert.False(t, stored.CreatedAt.IsZero())
}
