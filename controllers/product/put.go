package productcontroller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

// PUT/PATCH /products/:id/
// Partial update; a categories field replaces the whole category set.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Categories").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Product not found")
			return
		}

		var fields map[string]json.RawMessage
		if err := c.ShouldBindJSON(&fields); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if raw, ok := fields["name"]; ok {
			var name string
			if err := json.Unmarshal(raw, &name); err != nil || name == "" {
				helper.Error(c, http.StatusBadRequest, "Invalid name")
				return
			}
			product.Name = name
		}
		if raw, ok := fields["description"]; ok {
			if err := json.Unmarshal(raw, &product.Description); err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid description")
				return
			}
		}
		if raw, ok := fields["price"]; ok {
			var price decimal.Decimal
			if err := json.Unmarshal(raw, &price); err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid price")
				return
			}
			if err := validatePrice(price); err != nil {
				helper.Error(c, http.StatusBadRequest, err.Error())
				return
			}
			product.Price = price
		}

		var newCategories []models.Category
		replaceCategories := false
		if raw, ok := fields["categories"]; ok {
			var ids []uint
			if err := json.Unmarshal(raw, &ids); err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid categories")
				return
			}
			categories, err := resolveCategories(db, ids)
			if err != nil {
				helper.Error(c, http.StatusBadRequest, err.Error())
				return
			}
			newCategories = categories
			replaceCategories = true
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Categories").Save(&product).Error; err != nil {
				return err
			}
			if replaceCategories {
				assoc := tx.Model(&product).Association("Categories")
				if len(newCategories) == 0 {
					if err := assoc.Clear(); err != nil {
						return err
					}
				} else if err := assoc.Replace(newCategories); err != nil {
					return err
				}
				product.Categories = newCategories
			}
			return nil
		})
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}

		c.JSON(http.StatusOK, responses.NewProduct(product))
	}
}
