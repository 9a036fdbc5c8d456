package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AlbertTesco/Horns-and-hooves/auth"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/routes"
)

// Password is the plaintext password of every user created by CreateUser.
const Password = "correct-horse-battery"

// SetupDB opens a fresh in-memory database with the full schema migrated.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	auth.SetSecret("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// SetupRouter wires the real route table onto a test engine.
func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return r
}

func CreateUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, PasswordHash: string(hash), Name: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := auth.GenerateToken(user.ID, auth.Secret())
	require.NoError(t, err)
	return token
}

func CreateCategory(t *testing.T, db *gorm.DB, name string, parentID *uint) models.Category {
	t.Helper()

	category := models.Category{Name: name, ParentID: parentID}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func CreateProduct(t *testing.T, db *gorm.DB, name, price string, categories ...models.Category) models.Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product := models.Product{Name: name, Description: name + " description", Price: p, Categories: categories}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// Do performs a request against the router, optionally authenticated and
// with a JSON body, and returns the recorded response.
func Do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a recorded response body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
