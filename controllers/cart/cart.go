package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/middleware"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

type AddItemInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  *uint `json:"quantity"`
}

type UpdateCartInput struct {
	Items []UpdateItemInput `json:"items"`
}

type UpdateItemInput struct {
	ID       uint  `json:"id" binding:"required"`
	Quantity *uint `json:"quantity"`
}

type RemoveItemInput struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// findOrCreateCart resolves the user's single cart, creating it on first
// use. The unique index on user_id settles the create race: a loser of the
// insert falls back to reading the winner's row.
func findOrCreateCart(db *gorm.DB, userID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	cart = models.Cart{UserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		if fetchErr := db.Where("user_id = ?", userID).First(&cart).Error; fetchErr == nil {
			return cart, nil
		}
		return cart, err
	}
	return cart, nil
}

func loadCart(db *gorm.DB, cartID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.id ASC")
	}).Preload("Items.Product.Categories").First(&cart, cartID).Error
	return cart, err
}

// GET /cart/
// Lists the caller's carts. Anonymous callers get an empty list, not a 401.
func GetCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusOK, []responses.CartResponse{})
			return
		}

		var carts []models.Cart
		if err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).Preload("Items.Product.Categories").Where("user_id = ?", userID).Find(&carts).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch carts")
			return
		}

		c.JSON(http.StatusOK, responses.NewCarts(carts))
	}
}

// POST /cart/
// Adds a product to the caller's cart, creating the cart lazily. Adding a
// product already in the cart increments its quantity in a single upsert,
// so two concurrent adds cannot produce duplicate rows.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		quantity := uint(1)
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if quantity < 1 {
			helper.Error(c, http.StatusBadRequest, "Quantity must be at least 1")
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helper.Error(c, http.StatusBadRequest, "Product does not exist")
				return
			}
			helper.Error(c, http.StatusInternalServerError, "Failed to validate product")
			return
		}

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			logrus.WithError(err).Error("failed to resolve cart")
			helper.Error(c, http.StatusInternalServerError, "Failed to resolve cart")
			return
		}

		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).Create(&item).Error
		if err != nil {
			logrus.WithError(err).Error("failed to upsert cart item")
			helper.Error(c, http.StatusInternalServerError, "Failed to add item to cart")
			return
		}

		full, err := loadCart(db, cart.ID)
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusCreated, responses.NewCart(full))
	}
}

// PUT/PATCH /cart/:id/
// Partially updates quantities of the named items, each scoped to this cart.
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var cart models.Cart
		if err := db.First(&cart, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Cart not found")
			return
		}
		if cart.UserID != userID {
			helper.Error(c, http.StatusForbidden, "You do not have permission to update this cart")
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, itemInput := range input.Items {
				var item models.CartItem
				if err := tx.Where("id = ? AND cart_id = ?", itemInput.ID, cart.ID).First(&item).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return errItemNotInCart
					}
					return err
				}
				if itemInput.Quantity != nil {
					if *itemInput.Quantity < 1 {
						return errBadQuantity
					}
					item.Quantity = *itemInput.Quantity
				}
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			switch {
			case errors.Is(err, errItemNotInCart):
				helper.Error(c, http.StatusNotFound, "Cart item not found")
			case errors.Is(err, errBadQuantity):
				helper.Error(c, http.StatusBadRequest, "Quantity must be at least 1")
			default:
				logrus.WithError(err).Error("failed to update cart")
				helper.Error(c, http.StatusInternalServerError, "Failed to update cart")
			}
			return
		}

		full, err := loadCart(db, cart.ID)
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, responses.NewCart(full))
	}
}

// DELETE /cart/:id/
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var cart models.Cart
		if err := db.First(&cart, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Cart not found")
			return
		}
		if cart.UserID != userID {
			helper.Error(c, http.StatusForbidden, "You do not have permission to delete this cart")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&cart).Error
		})
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to delete cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DELETE /cart/:id/remove_item/
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var cart models.Cart
		if err := db.First(&cart, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Cart not found")
			return
		}
		if cart.UserID != userID {
			helper.Error(c, http.StatusForbidden, "You do not have permission to remove this item")
			return
		}

		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		result := db.Where("id = ? AND cart_id = ?", input.ItemID, cart.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to remove item")
			return
		}
		if result.RowsAffected == 0 {
			helper.Error(c, http.StatusNotFound, "Item not found in cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
