package responses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertTesco/Horns-and-hooves/models"
	"github.com/AlbertTesco/Horns-and-hooves/responses"
)

func uintPtr(v uint) *uint { return &v }

func TestBuildTreeNestsDescendants(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Phones", ParentID: uintPtr(1)},
		{ID: 3, Name: "Smartphones", ParentID: uintPtr(2)},
		{ID: 4, Name: "Books"},
	}

	tree, err := responses.BuildTree(categories)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, uint(1), tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, uint(3), tree[0].Children[0].Children[0].ID)
	assert.Empty(t, tree[1].Children)
}

func TestBuildTreeEmptyForest(t *testing.T) {
	tree, err := responses.BuildTree(nil)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestBuildTreeDetectsCycle(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "A", ParentID: uintPtr(2)},
		{ID: 2, Name: "B", ParentID: uintPtr(1)},
	}

	_, err := responses.BuildTree(categories)
	assert.ErrorIs(t, err, responses.ErrCategoryCycle)
}

func TestBuildTreeDetectsCycleBelowRoot(t *testing.T) {
	// Root is fine; a subtree below it loops.
	categories := []models.Category{
		{ID: 1, Name: "Root"},
		{ID: 2, Name: "A", ParentID: uintPtr(3)},
		{ID: 3, Name: "B", ParentID: uintPtr(2)},
	}

	_, err := responses.BuildTree(categories)
	assert.ErrorIs(t, err, responses.ErrCategoryCycle)
}
