package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/middleware"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

// ErrEmptyCart is returned when order creation finds no cart or no items.
var ErrEmptyCart = errors.New("cart is empty")

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts the user's cart into an immutable order inside a
// single transaction: create the order, copy every cart line to an order
// item, clear the cart, then persist the total. The total is accumulated
// from the product rows read during the copy, so a price change elsewhere
// cannot slip between the snapshot and the pricing. Any error rolls the
// whole sequence back.
func PlaceOrder(db *gorm.DB, userID uint) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			UserID:     userID,
			OrderRef:   generateOrderRef(),
			TotalPrice: decimal.Zero,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		order.TotalPrice = total
		return tx.Model(&order).Update("total_price", total).Error
	})

	return order, err
}

func loadOrder(db *gorm.DB, orderID uint) (models.Order, error) {
	var order models.Order
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id ASC")
	}).Preload("Items.Product.Categories").First(&order, orderID).Error
	return order, err
}

// POST /orders/
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		order, err := PlaceOrder(db, userID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				helper.Error(c, http.StatusBadRequest, "Cart is empty")
				return
			}
			logrus.WithError(err).Error("failed to place order")
			helper.Error(c, http.StatusInternalServerError, "Failed to place order")
			return
		}

		full, err := loadOrder(db, order.ID)
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch order")
			return
		}

		logrus.WithFields(logrus.Fields{
			"order_id": full.ID,
			"user_id":  userID,
			"total":    full.TotalPrice.StringFixed(2),
		}).Info("order placed")
		c.JSON(http.StatusCreated, responses.NewOrder(full))
	}
}

// GET /orders/
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var orders []models.Order
		err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).Preload("Items.Product.Categories").
			Where("user_id = ?", userID).
			Order("orders.id ASC").
			Find(&orders).Error
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		c.JSON(http.StatusOK, responses.NewOrders(orders))
	}
}

// GET /orders/:id/
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var order models.Order
		err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).Preload("Items.Product.Categories").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error
		if err != nil {
			helper.Error(c, http.StatusNotFound, "Order not found")
			return
		}

		c.JSON(http.StatusOK, responses.NewOrder(order))
	}
}

// DELETE /orders/:id/
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		if order.UserID != userID {
			helper.Error(c, http.StatusForbidden, "You do not have permission to delete this order")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to delete order")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
