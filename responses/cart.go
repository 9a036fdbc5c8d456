package responses

import "github.com/AlbertTesco/Horns-and-hooves/models"

type CartItemResponse struct {
	ID        uint            `json:"id"`
	Product   ProductResponse `json:"product"`
	ProductID uint            `json:"product_id"`
	Quantity  uint            `json:"quantity"`
}

type CartResponse struct {
	ID    uint               `json:"id"`
	User  uint               `json:"user"`
	Items []CartItemResponse `json:"items"`
}

func NewCart(cart models.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ID:        item.ID,
			Product:   NewProduct(item.Product),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return CartResponse{ID: cart.ID, User: cart.UserID, Items: items}
}

func NewCarts(carts []models.Cart) []CartResponse {
	out := make([]CartResponse, 0, len(carts))
	for _, cart := range carts {
		out = append(out, NewCart(cart))
	}
	return out
}
