package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"boutique-backend/internal/domain"
)

// maxPerProduct caps the quantity of any single variant in a cart.
const maxPerProduct = 99

var taxRate = decimal.NewFromFloat(0.19)

// Line is one candidate order line held in a session cart. AvailableStock is a
// snapshot taken when the article page was loaded; the store revalidates stock
// at order creation.
type Line struct {
	VariantID      int64           `json:"variantId"`
	ArticleID      int64           `json:"articleId"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Size           string          `json:"size"`
	Color          string          `json:"color"`
	SKU            string          `json:"sku"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	AvailableStock int             `json:"availableStock"`
}

// Subtotal is the line amount: unit price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates candidate order lines for a single user session. A Cart is
// owned by exactly one session and must not be shared across sessions; the
// mutex only covers concurrent requests within that session.
type Cart struct {
	mu       sync.Mutex
	lines    []Line
	onChange []func()
}

func New() *Cart {
	return &Cart{}
}

// Subscribe registers fn to run after every mutation. Callbacks run
// synchronously on the mutating goroutine.
func (c *Cart) Subscribe(fn func()) {
	c.mu.Lock()
	c.onChange = append(c.onChange, fn)
	c.mu.Unlock()
}

// Add inserts a line, or increments the quantity of an existing line for the
// same variant. Quantities above the available stock or the per-product cap
// are clamped silently, never rejected.
func (c *Cart) Add(line Line) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].VariantID == line.VariantID {
			c.lines[i].Quantity = clamp(c.lines[i].Quantity+line.Quantity, c.lines[i].AvailableStock)
			c.notifyLocked()
			c.mu.Unlock()
			return
		}
	}
	line.Quantity = clamp(line.Quantity, line.AvailableStock)
	c.lines = append(c.lines, line)
	c.notifyLocked()
	c.mu.Unlock()
}

// UpdateQuantity sets the quantity for a variant. Values at or below zero
// remove the line; values above stock clamp to stock, then to the hard cap.
// Unknown variants are a no-op.
func (c *Cart) UpdateQuantity(variantID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(variantID)
		return
	}
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].VariantID == variantID {
			c.lines[i].Quantity = clamp(quantity, c.lines[i].AvailableStock)
			c.notifyLocked()
			break
		}
	}
	c.mu.Unlock()
}

// Remove drops the line for a variant, if present.
func (c *Cart) Remove(variantID int64) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].VariantID == variantID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notifyLocked()
			break
		}
	}
	c.mu.Unlock()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.notifyLocked()
	c.mu.Unlock()
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalQuantity sums the quantities across all lines.
func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums line subtotals with exact decimal arithmetic.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

// Tax is a fixed 19% of the subtotal.
func (c *Cart) Tax() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked().Mul(taxRate)
}

// Total is subtotal plus tax.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := c.subtotalLocked()
	return sub.Add(sub.Mul(taxRate))
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// QuantityOf returns the quantity held for a variant, zero if absent.
func (c *Cart) QuantityOf(variantID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if l.VariantID == variantID {
			return l.Quantity
		}
	}
	return 0
}

// Contains reports whether a variant is in the cart.
func (c *Cart) Contains(variantID int64) bool {
	return c.QuantityOf(variantID) > 0
}

// Proposal builds an order proposal from the current lines. The caller still
// runs it through the validator before it reaches the store.
func (c *Cart) Proposal(customerID, shippingAddressID, paymentMethodID int64) domain.OrderProposal {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]domain.ProposalLine, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, domain.ProposalLine{VariantID: l.VariantID, Quantity: l.Quantity})
	}
	return domain.OrderProposal{
		CustomerID:        customerID,
		ShippingAddressID: shippingAddressID,
		PaymentMethodID:   paymentMethodID,
		Lines:             lines,
	}
}

func (c *Cart) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func (c *Cart) notifyLocked() {
	for _, fn := range c.onChange {
		fn()
	}
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		quantity = stock
	}
	if quantity > maxPerProduct {
		quantity = maxPerProduct
	}
	return quantity
}
