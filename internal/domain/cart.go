package domain

// CartLine is one desired (product, quantity) pair in a session cart.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Cart is the ordered sequence of lines for one session. A nil Cart behaves
// as empty.
type Cart []CartLine

// Merge adds quantity to the existing line for productID, or appends a new
// line at the end. The cart never holds two lines for the same product.
func (c Cart) Merge(productID int64, quantity int) Cart {
	for i := range c {
		if c[i].ProductID == productID {
			c[i].Quantity += quantity
			return c
		}
	}
	return append(c, CartLine{ProductID: productID, Quantity: quantity})
}

// Remove drops every line for productID, preserving the order of the rest.
// Removing an absent product is a no-op.
func (c Cart) Remove(productID int64) Cart {
	out := c[:0]
	for _, line := range c {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
