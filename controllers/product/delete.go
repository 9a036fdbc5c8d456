package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/models"
)

// DELETE /products/:id/
// Cart and order lines referencing the product go with it, so no cart can
// later be priced against a vanished row.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Product not found")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
