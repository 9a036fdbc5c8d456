package categoryControllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AlbertTesco/Horns-and-hooves/helper"
	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

type CategoryInput struct {
	Name   string `json:"name" binding:"required"`
	Parent *uint  `json:"parent"`
}

// GET /categories/
// Returns root categories only; descendants are reachable through the
// nested children field.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}

		tree, err := responses.BuildTree(categories)
		if err != nil {
			logrus.WithError(err).Error("category tree is corrupted")
			helper.Error(c, http.StatusInternalServerError, "Category tree is corrupted")
			return
		}
		c.JSON(http.StatusOK, tree)
	}
}

// GET /categories/:id/
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Category not found")
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}

		node, err := responses.BuildSubtree(category, categories)
		if err != nil {
			logrus.WithError(err).Error("category tree is corrupted")
			helper.Error(c, http.StatusInternalServerError, "Category tree is corrupted")
			return
		}
		c.JSON(http.StatusOK, node)
	}
}

// POST /categories/
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Parent != nil {
			var parent models.Category
			if err := db.First(&parent, *input.Parent).Error; err != nil {
				helper.Error(c, http.StatusBadRequest, "Parent category does not exist")
				return
			}
		}

		category := models.Category{Name: input.Name, ParentID: input.Parent}
		if err := db.Create(&category).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to create category")
			return
		}

		c.JSON(http.StatusCreated, responses.CategoryNode{
			ID:       category.ID,
			Name:     category.Name,
			Parent:   category.ParentID,
			Children: []responses.CategoryNode{},
		})
	}
}

// PUT/PATCH /categories/:id/
// Partial update; "parent": null detaches the category to a root. Moving a
// category under itself or one of its descendants is rejected.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Category not found")
			return
		}

		var fields map[string]json.RawMessage
		if err := c.ShouldBindJSON(&fields); err != nil {
			helper.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if raw, ok := fields["name"]; ok {
			var name string
			if err := json.Unmarshal(raw, &name); err != nil || name == "" {
				helper.Error(c, http.StatusBadRequest, "Invalid name")
				return
			}
			category.Name = name
		}

		if raw, ok := fields["parent"]; ok {
			var parentID *uint
			if err := json.Unmarshal(raw, &parentID); err != nil {
				helper.Error(c, http.StatusBadRequest, "Invalid parent")
				return
			}
			if parentID != nil {
				if err := checkParent(db, category.ID, *parentID); err != nil {
					switch {
					case errors.Is(err, errParentNotFound):
						helper.Error(c, http.StatusBadRequest, "Parent category does not exist")
					case errors.Is(err, errInvalidParent):
						helper.Error(c, http.StatusBadRequest, "Category cannot be its own ancestor")
					default:
						helper.Error(c, http.StatusInternalServerError, "Failed to validate parent")
					}
					return
				}
			}
			category.ParentID = parentID
		}

		if err := db.Save(&category).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to update category")
			return
		}

		c.JSON(http.StatusOK, responses.CategoryNode{
			ID:       category.ID,
			Name:     category.Name,
			Parent:   category.ParentID,
			Children: []responses.CategoryNode{},
		})
	}
}

// DELETE /categories/:id/
// Removes the category and every descendant, with their product
// associations, in one transaction.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			helper.Error(c, http.StatusNotFound, "Category not found")
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			helper.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		ids := collectSubtreeIDs(category.ID, categories)

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM product_categories WHERE category_id IN ?", ids).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Category{}, ids).Error
		})
		if err != nil {
			logrus.WithError(err).Error("failed to delete category subtree")
			helper.Error(c, http.StatusInternalServerError, "Failed to delete category")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// checkParent rejects re-parenting onto the category itself or any of its
// descendants, which would close a cycle in the parent chain.
func checkParent(db *gorm.DB, categoryID, parentID uint) error {
	if parentID == categoryID {
		return errInvalidParent
	}

	var parent models.Category
	if err := db.First(&parent, parentID).Error; err != nil {
		return errParentNotFound
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}
	for _, id := range collectSubtreeIDs(categoryID, categories) {
		if id == parentID {
			return errInvalidParent
		}
	}
	return nil
}

// collectSubtreeIDs walks the adjacency map breadth-first from root,
// tracking visited ids so a corrupted cycle cannot loop the walk.
func collectSubtreeIDs(root uint, categories []models.Category) []uint {
	children := make(map[uint][]uint, len(categories))
	for _, category := range categories {
		if category.ParentID != nil {
			children[*category.ParentID] = append(children[*category.ParentID], category.ID)
		}
	}

	ids := []uint{root}
	visited := map[uint]bool{root: true}
	for queue := []uint{root}; len(queue) > 0; {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			ids = append(ids, child)
			queue = append(queue, child)
		}
	}
	return ids
}
