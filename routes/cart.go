package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/AlbertTesco/Horns-and-hooves/controllers/cart"
	"github.com/AlbertTesco/Horns-and-hooves/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.GET("/", middleware.OptionalAuth, cartControllers.GetCarts(db))
		cart.POST("/", middleware.RequireAuth, cartControllers.AddCartItem(db))
		cart.PUT("/:id/", middleware.RequireAuth, cartControllers.UpdateCart(db))
		cart.PATCH("/:id/", middleware.RequireAuth, cartControllers.UpdateCart(db))
		cart.DELETE("/:id/", middleware.RequireAuth, cartControllers.DeleteCart(db))
		cart.DELETE("/:id/remove_item/", middleware.RequireAuth, cartControllers.RemoveCartItem(db))
	}
}
