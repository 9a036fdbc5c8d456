package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/AlbertTesco/Horns-and-hooves/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(db))
		products.POST("/", productcontroller.CreateProduct(db))
		products.GET("/:id/", productcontroller.GetProductByID(db))
		products.PUT("/:id/", productcontroller.UpdateProduct(db))
		products.PATCH("/:id/", productcontroller.UpdateProduct(db))
		products.DELETE("/:id/", productcontroller.DeleteProduct(db))
	}

	// Kept alongside /products/:id/ because clients already rely on it.
	r.GET("/product/:id/", productcontroller.GetProductByID(db))
}
