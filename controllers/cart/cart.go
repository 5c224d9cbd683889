package cartControllers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arslan020/techxchange/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not in cart")
	ErrVersionConflict = errors.New("cart was modified concurrently")
)

// GetCart returns the user's cart with items, or gorm.ErrRecordNotFound when
// the user has never written to their cart. Reads never create the row.
func GetCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// Touch applies the compare-and-swap version bump on the cart row. Zero rows
// affected means another request rewrote the cart since it was read; the
// surrounding transaction rolls back instead of silently dropping that write.
func Touch(tx *gorm.DB, cart *models.Cart) error {
	res := tx.Model(&models.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Update("version", gorm.Expr("version + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	cart.Version++
	return nil
}

// AddItem snapshots the product's current name, price and first image into a
// new line item, or increments qty when the product is already in the cart.
// The cart row is created lazily on the first write.
func AddItem(db *gorm.DB, userID, productID string, qty int) (*models.Cart, error) {
	if qty < 1 {
		qty = 1
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		c, err := GetCart(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = &models.Cart{UserID: userID}
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var existing *models.CartItem
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				existing = &c.Items[i]
				break
			}
		}
		if existing != nil {
			existing.Qty += qty
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
		} else {
			item := models.CartItem{
				CartID:    c.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Image:     product.FirstImage(),
				Qty:       qty,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		if err := Touch(tx, c); err != nil {
			return err
		}
		cart, err = GetCart(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets the line item's qty to exactly the given value; qty <= 0
// removes the line instead of storing a non-positive quantity.
func UpdateItem(db *gorm.DB, userID, productID string, qty int) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		c, err := GetCart(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		} else if err != nil {
			return err
		}

		var item *models.CartItem
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				item = &c.Items[i]
				break
			}
		}
		if item == nil {
			return ErrItemNotFound
		}

		if qty <= 0 {
			if err := tx.Delete(item).Error; err != nil {
				return err
			}
		} else {
			item.Qty = qty
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		if err := Touch(tx, c); err != nil {
			return err
		}
		cart, err = GetCart(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem is idempotent: a missing cart or a product not in the cart is
// not an error. Returns nil when the user has no cart.
func RemoveItem(db *gorm.DB, userID, productID string) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		c, err := GetCart(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		} else if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ? AND product_id = ?", c.ID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		if err := Touch(tx, c); err != nil {
			return err
		}
		cart, err = GetCart(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart upserts the cart to an empty item list, creating the row when
// the user has no cart yet.
func ClearCart(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		c, err := GetCart(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.Cart{UserID: userID}).Error
		} else if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", c.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return Touch(tx, c)
	})
}
