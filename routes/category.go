package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/AlbertTesco/Horns-and-hooves/controllers/category"
)

func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("/", categoryControllers.GetCategories(db))
		categories.POST("/", categoryControllers.CreateCategory(db))
		categories.GET("/:id/", categoryControllers.GetCategoryByID(db))
		categories.PUT("/:id/", categoryControllers.UpdateCategory(db))
		categories.PATCH("/:id/", categoryControllers.UpdateCategory(db))
		categories.DELETE("/:id/", categoryControllers.DeleteCategory(db))
	}
}
