package responses

import "github.com/AlbertTesco/Horns-and-hooves/models"

// ProductResponse is the read representation of a product: category names
// instead of ids, price rendered with two decimal places.
type ProductResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Categories  []string `json:"categories"`
}

func NewProduct(p models.Product) ProductResponse {
	names := make([]string, 0, len(p.Categories))
	for _, category := range p.Categories {
		names = append(names, category.Name)
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Categories:  names,
	}
}

func NewProducts(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p))
	}
	return out
}
