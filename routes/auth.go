package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/AlbertTesco/Horns-and-hooves/controllers/user"
	"github.com/AlbertTesco/Horns-and-hooves/middleware"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register/", userControllers.Register(db))
		authGroup.POST("/login/", userControllers.Login(db))
		authGroup.GET("/me/", middleware.RequireAuth, userControllers.GetUser(db))
	}
}
