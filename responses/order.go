package responses

import (
	"time"

	"github.com/AlbertTesco/Horns-and-hooves/models"
)

type OrderItemResponse struct {
	ID       uint            `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity uint            `json:"quantity"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	User       uint                `json:"user"`
	OrderRef   string              `json:"order_ref"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice string              `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
}

func NewOrder(order models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:       item.ID,
			Product:  NewProduct(item.Product),
			Quantity: item.Quantity,
		})
	}
	return OrderResponse{
		ID:         order.ID,
		User:       order.UserID,
		OrderRef:   order.OrderRef,
		Items:      items,
		TotalPrice: order.TotalPrice.StringFixed(2),
		CreatedAt:  order.CreatedAt,
	}
}

func NewOrders(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, NewOrder(order))
	}
	return out
}
