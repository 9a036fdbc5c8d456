package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

// POST /products/
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		if input.Price == nil {
			helper.Error(c, http.StatusBadRequest, "Price is required")
			return
		}
		if err := validatePrice(*input.Price); err != nil {
			helper.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		categories, err := resolveCategories(db, input.Categories)
		if err != nil {
			helper.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			Categories:  categories,
		}
		if err := db.Create(&product).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}

		c.JSON(http.StatusCreated, responses.NewProduct(product))
	}
}
