package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

// GET /products/
// Supports min_price, max_price (inclusive), category_id (direct tag only),
// page and page_size. Results are ordered by id ascending and wrapped in a
// count/next/previous/results envelope.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			minPrice, err := decimal.NewFromString(minPriceStr)
			if err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid min_price")
				return
			}
			query = query.Where("price >= ?", minPrice)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			maxPrice, err := decimal.NewFromString(maxPriceStr)
			if err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid max_price")
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}
		if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
			categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
			if err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid category_id")
				return
			}
			query = query.
				Joins("JOIN product_categories pc ON pc.product_id = products.id").
				Where("pc.category_id = ?", uint(categoryID))
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to count products")
			return
		}

		page := helper.ParsePage(c)
		// The first page of an empty result set is fine; any page past the
		// end is not.
		if page.Number > 1 && int64(page.Offset()) >= count {
			helper.Error(c, http.StatusNotFound, "Invalid page.")
			return
		}
		var products []models.Product
		if err := query.
			Preload("Categories").
			Order("products.id ASC").
			Offset(page.Offset()).
			Limit(page.Size).
			Find(&products).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		c.JSON(http.StatusOK, helper.NewPaginated(c, page, count, responses.NewProducts(products)))
	}
}
