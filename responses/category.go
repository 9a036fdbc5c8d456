package responses

import (
	"errors"

	"github.com/AlbertTesco/Horns-and-hooves/models"
)

// ErrCategoryCycle reports a corrupted parent chain discovered while
// materializing the tree. The walk fails fast instead of recursing forever.
var ErrCategoryCycle = errors.New("category cycle detected")

// CategoryNode is a category with its descendants nested recursively.
type CategoryNode struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Parent   *uint          `json:"parent"`
	Children []CategoryNode `json:"children"`
}

// BuildTree materializes the forest of root categories from a flat category
// list. Children are attached through an adjacency map and an explicit walk
// with a visited set, so a cyclic parent chain returns ErrCategoryCycle
// rather than unbounded recursion.
func BuildTree(categories []models.Category) ([]CategoryNode, error) {
	children := childrenByParent(categories)

	roots := make([]CategoryNode, 0)
	visited := make(map[uint]bool, len(categories))
	for _, category := range categories {
		if category.ParentID != nil {
			continue
		}
		node, err := buildNode(category, children, visited)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}

	// Nodes unreachable from any root can only sit on a parent cycle.
	if len(visited) != len(categories) {
		return nil, ErrCategoryCycle
	}
	return roots, nil
}

// BuildSubtree materializes a single category with its descendants.
func BuildSubtree(root models.Category, categories []models.Category) (CategoryNode, error) {
	return buildNode(root, childrenByParent(categories), make(map[uint]bool))
}

func childrenByParent(categories []models.Category) map[uint][]models.Category {
	children := make(map[uint][]models.Category, len(categories))
	for _, category := range categories {
		if category.ParentID != nil {
			children[*category.ParentID] = append(children[*category.ParentID], category)
		}
	}
	return children
}

func buildNode(category models.Category, children map[uint][]models.Category, visited map[uint]bool) (CategoryNode, error) {
	if visited[category.ID] {
		return CategoryNode{}, ErrCategoryCycle
	}
	visited[category.ID] = true

	node := CategoryNode{
		ID:       category.ID,
		Name:     category.Name,
		Parent:   category.ParentID,
		Children: make([]CategoryNode, 0),
	}
	for _, child := range children[category.ID] {
		childNode, err := buildNode(child, children, visited)
		if err != nil {
			return CategoryNode{}, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}
