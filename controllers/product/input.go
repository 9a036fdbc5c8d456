package productcontroller

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/models"
)

// ProductInput is the write representation: categories are referenced by id.
type ProductInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Categories  []uint           `json:"categories"`
}

var errBadPrice = errors.New("price must be non-negative with at most two decimal places")

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() || price.Exponent() < -2 {
		return errBadPrice
	}
	return nil
}

// resolveCategories loads the referenced categories, failing when any id
// does not exist.
func resolveCategories(db *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, errors.New("one or more categories do not exist")
	}
	return categories, nil
}
