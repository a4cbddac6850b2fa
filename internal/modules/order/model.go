package order

import "errors"

// Order domain errors.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock for a cart item")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrTrackingExists    = errors.New("order already has a tracking record")
	ErrInvalidTracking   = errors.New("unknown tracking status")
)

// PlaceOrderRequest is the payload for checking out the acting user's cart.
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

// UpdateStatusRequest is the payload for moving an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// AddTrackingRequest attaches a shipment record to an order.
type AddTrackingRequest struct {
	TrackingNumber    string `json:"tracking_number"`
	Carrier           string `json:"carrier"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// TrackingUpdateRequest appends a scan event to a shipment.
type TrackingUpdateRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
