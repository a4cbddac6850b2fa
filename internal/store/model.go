package store

import "time"

// UserRole distinguishes back-office staff from shop customers.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// User is an account known to the shop.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Plan         string     `json:"plan,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategoryPanel     ProductCategory = "panel"
	CategoryBattery   ProductCategory = "battery"
	CategoryInverter  ProductCategory = "inverter"
	CategoryAccessory ProductCategory = "accessory"
)

// Product is a catalog entry. Prices are in minor currency units.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         int64             `json:"price"`
	DiscountPrice *int64            `json:"discount_price,omitempty"`
	Category      ProductCategory   `json:"category"`
	ImageURL      string            `json:"image_url,omitempty"`
	Rating        float64           `json:"rating"`
	InStock       bool              `json:"in_stock"`
	Featured      bool              `json:"featured"`
	Stock         int               `json:"stock"`
	SKU           string            `json:"sku"`
	Sold          int               `json:"sold"`
	Specs         map[string]string `json:"specs,omitempty"`
}

// EffectivePrice is the discount price when set, the list price otherwise.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// SyncStock re-derives the in_stock flag. Must be called after every
// stock mutation.
func (p *Product) SyncStock() {
	p.InStock = p.Stock > 0
}

// CartItem is one line of a user's cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
}

// ValidOrderStatus reports whether s names a known status.
func ValidOrderStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a placed order. Items are a snapshot of the cart at placement
// time and TotalAmount is frozen then; later price changes do not touch it.
type Order struct {
	ID                string      `json:"id"`
	OrderNumber       string      `json:"order_number"`
	UserID            string      `json:"user_id"`
	Items             []CartItem  `json:"items"`
	TotalAmount       int64       `json:"total_amount"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	ShippingAddress   string      `json:"shipping_address"`
	PaymentMethod     string      `json:"payment_method"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
	Notes             string      `json:"notes,omitempty"`
}

// PaymentStatus is the state of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is a record of money owed or received. Order payments are created
// with the order and carry its id; standalone records (installation,
// subscriptions) have no order reference.
type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Amount        int64         `json:"amount"`
	Description   string        `json:"description"`
	Status        PaymentStatus `json:"status"`
	Date          time.Time     `json:"date"`
	OrderID       string        `json:"order_id,omitempty"`
	Method        string        `json:"method,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
}

// TrackingStatus is the closed set of shipment states. Update statuses are
// validated against the same set, so the record-level status overwrite in
// UpdateTracking can never introduce an unknown value.
type TrackingStatus string

const (
	TrackingPickedUp       TrackingStatus = "picked-up"
	TrackingInTransit      TrackingStatus = "in-transit"
	TrackingOutForDelivery TrackingStatus = "out-for-delivery"
	TrackingDelivered      TrackingStatus = "delivered"
	TrackingException      TrackingStatus = "exception"
)

// ValidTrackingStatus reports whether s names a known shipment state.
func ValidTrackingStatus(s TrackingStatus) bool {
	switch s {
	case TrackingPickedUp, TrackingInTransit, TrackingOutForDelivery,
		TrackingDelivered, TrackingException:
		return true
	}
	return false
}

// TrackingUpdate is one scan event on a shipment.
type TrackingUpdate struct {
	Date        time.Time      `json:"date"`
	Status      TrackingStatus `json:"status"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
}

// Tracking is the shipment record for an order (1:1). Updates are
// append-only.
type Tracking struct {
	OrderID           string           `json:"order_id"`
	TrackingNumber    string           `json:"tracking_number"`
	Carrier           string           `json:"carrier"`
	Status            TrackingStatus   `json:"status"`
	EstimatedDelivery string           `json:"estimated_delivery"`
	Updates           []TrackingUpdate `json:"updates"`
}

// TicketStatus and TicketPriority classify support tickets.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// TicketComment is one reply on a ticket, from the customer or staff.
type TicketComment struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsAdmin   bool      `json:"is_admin"`
}

// Ticket is a support request.
type Ticket struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      TicketStatus    `json:"status"`
	Priority    TicketPriority  `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UserID      string          `json:"user_id"`
	AssignedTo  string          `json:"assigned_to,omitempty"`
	Category    string          `json:"category"`
	Attachments []string        `json:"attachments,omitempty"`
	Comments    []TicketComment `json:"comments,omitempty"`
}

// ChatMessage is one line of a user's support chat. Append-only; only the
// read flag ever changes afterwards.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsBot     bool      `json:"is_bot"`
	Read      bool      `json:"read"`
}

// ReferralStatus tracks a referral through signup and conversion.
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralSignedUp  ReferralStatus = "signed-up"
	ReferralConverted ReferralStatus = "converted"
)

// Referral is a refer-a-friend record.
type Referral struct {
	ID            string         `json:"id"`
	ReferrerID    string         `json:"referrer_id"`
	ReferredEmail string         `json:"referred_email"`
	Status        ReferralStatus `json:"status"`
	Date          time.Time      `json:"date"`
	Reward        int64          `json:"reward,omitempty"`
	ConvertedOn   *time.Time     `json:"converted_on,omitempty"`
}

// EnergyReading is one point of a user's monthly production series.
type EnergyReading struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
