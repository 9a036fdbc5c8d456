package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

// GET /products/:id/ and GET /product/:id/
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Categories").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, responses.NewProduct(product))
	}
}
