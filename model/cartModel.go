// model/cart.go
package model

// CartItem is a quantity-keyed line in the food-ordering cart.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Merchant string `json:"merchant"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartAddReq adds a line to the cart, merging quantity for an existing line.
// swagger:model CartAddReq
type CartAddReq struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Merchant string `json:"merchant"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CartQuantityReq sets the quantity of a cart line; zero removes it.
// swagger:model CartQuantityReq
type CartQuantityReq struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}
