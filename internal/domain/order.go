package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses form a closed, case-sensitive set. Orders are never deleted,
// only transitioned; Cancelled and Delivered are terminal in the store.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// OrderStatuses lists every status accepted by the status-update operation.
var OrderStatuses = []string{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}

// ValidOrderStatus reports whether s is an exact member of the closed status set.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ProposalLine is one candidate order line, identified by a purchasable variant.
type ProposalLine struct {
	VariantID int64 `json:"variantId"`
	Quantity  int   `json:"quantity"`
}

// OrderProposal is the validated input to order creation. The validator
// guarantees non-empty lines and unique variant ids before it reaches the store.
type OrderProposal struct {
	CustomerID        int64          `json:"customerId"`
	ShippingAddressID int64          `json:"shippingAddressId"`
	PaymentMethodID   int64          `json:"paymentMethodId"`
	Lines             []ProposalLine `json:"lines"`
}

// OrderSummary is the list-view shape of an order.
type OrderSummary struct {
	ID            int64           `json:"id"`
	Number        string          `json:"number"`
	CreatedAt     time.Time       `json:"createdAt"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	PaymentMethod string          `json:"paymentMethod"`
	ProductCount  int             `json:"productCount"`
}

// OrderLine is one persisted order detail row with its descriptive snapshot.
type OrderLine struct {
	DetailID  int64           `json:"detailId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Product   string          `json:"product"`
	Brand     string          `json:"brand"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	SKU       string          `json:"sku"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

// Order is the full detail view returned by the get-order operation.
type Order struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	CreatedAt       time.Time       `json:"createdAt"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress string          `json:"shippingAddress"`
	ShippingCity    string          `json:"shippingCity"`
	Lines           []OrderLine     `json:"lines"`
}

// PaymentMethod is a selectable payment option.
type PaymentMethod struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}
