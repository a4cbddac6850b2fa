package cart

import (
	"errors"

	"github.com/sunspire/solarmart-backend/internal/store"
)

// Cart domain errors. A failed precondition never mutates the cart.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is out of stock")
	ErrInsufficientStock  = errors.New("requested quantity exceeds available stock")
	ErrItemNotFound       = errors.New("product is not in the cart")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
)

// Summary is the derived view of a cart. Total and Count are recomputed
// from the current product prices on every call, never stored: a price
// change reprices an open cart retroactively.
type Summary struct {
	Items []store.CartItem `json:"items"`
	Total int64            `json:"total"`
	Count int              `json:"count"`
}

// AddItemRequest is the payload for adding to or updating the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
