package dto

// AddCartItemRequest adds quantity of a product to the session cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLineResponse mirrors one cart line.
type CartLineResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutResponse summarizes a checkout attempt.
type CheckoutResponse struct {
	CartEmpty    bool    `json:"cart_empty"`
	OrdersPlaced int     `json:"orders_placed"`
	OrderIDs     []int64 `json:"order_ids,omitempty"`
	DeliveryDate string  `json:"delivery_date,omitempty"`
}
