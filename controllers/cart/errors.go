package cartControllers

import "errors"

var (
	errItemNotInCart = errors.New("cart item not found in cart")
	errBadQuantity   = errors.New("quantity must be at least 1")
)
