package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/auth"
	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/middleware"
	"github.com/AlbertTesco/Horns-and-hooves/models"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register/
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user := models.User{
			Email:        input.Email,
			PasswordHash: string(hash),
			Name:         input.Name,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				helper.Error(c, http.StatusBadRequest, "Email already registered")
				return
			}
			logrus.WithError(err).Error("failed to create user")
			helper.Error(c, http.StatusInternalServerError, "Failed to create user")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		})
	}
}

// POST /auth/login/
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			helper.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			helper.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := auth.GenerateToken(user.ID, auth.Secret())
		if err != nil {
			logrus.WithError(err).Error("failed to sign token")
			helper.Error(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GET /auth/me/
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "User not found")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
