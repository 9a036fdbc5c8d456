package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/AlbertTesco/Horns-and-hooves/controllers/order"
	"github.com/AlbertTesco/Horns-and-hooves/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders", middleware.RequireAuth)
	{
		orders.GET("/", orderControllers.GetOrders(db))
		orders.POST("/", orderControllers.CreateOrder(db))
		orders.GET("/:id/", orderControllers.GetOrderByID(db))
		orders.DELETE("/:id/", orderControllers.DeleteOrder(db))
	}
}
