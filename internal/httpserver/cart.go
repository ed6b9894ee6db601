package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"boutique-backend/internal/cart"
	"boutique-backend/internal/domain"
	ordersvc "boutique-backend/internal/service/order"
	sessionsvc "boutique-backend/internal/service/session"
)

const sessionHeader = "X-Session-Token"

type cartHandlers struct {
	sessions *sessionsvc.Service
	orders   *ordersvc.Service
}

type sessionResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

type cartView struct {
	Lines         []cart.Line     `json:"lines"`
	TotalQuantity int             `json:"totalQuantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Empty         bool            `json:"empty"`
}

type checkoutRequest struct {
	CustomerID        int64 `json:"customerId"`
	ShippingAddressID int64 `json:"shippingAddressId"`
	PaymentMethodID   int64 `json:"paymentMethodId"`
}

func (h *cartHandlers) createSession(c *gin.Context) {
	token, err := h.sessions.Issue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.Fail[sessionResponse]("could not create session"))
		return
	}
	resp := sessionResponse{Token: token, ExpiresIn: h.sessions.TTLSeconds()}
	c.JSON(http.StatusOK, domain.DoneData("session created", resp))
}

func (h *cartHandlers) show(c *gin.Context) {
	sc, ok := h.sessionCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, domain.DoneData("cart retrieved", viewOf(sc)))
}

func (h *cartHandlers) addItem(c *gin.Context) {
	sc, ok := h.sessionCart(c)
	if !ok {
		return
	}
	var line cart.Line
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, domain.Fail[cartView]("invalid request body"))
		return
	}
	if line.VariantID <= 0 || line.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, domain.Fail[cartView]("variantId and quantity must be positive"))
		return
	}
	sc.Add(line)
	c.JSON(http.StatusOK, domain.DoneData("item added to cart", viewOf(sc)))
}

func (h *cartHandlers) updateItem(c *gin.Context) {
	sc, ok := h.sessionCart(c)
	if !ok {
		return
	}
	variantID, ok := paramID(c, "variantID")
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.Fail[cartView]("invalid request body"))
		return
	}
	sc.UpdateQuantity(variantID, req.Quantity)
	c.JSON(http.StatusOK, domain.DoneData("cart updated", viewOf(sc)))
}

func (h *cartHandlers) removeItem(c *gin.Context) {
	sc, ok := h.sessionCart(c)
	if !ok {
		return
	}
	variantID, ok := paramID(c, "variantID")
	if !ok {
		return
	}
	sc.Remove(variantID)
	c.JSON(http.StatusOK, domain.DoneData("item removed from cart", viewOf(sc)))
}

func (h *cartHandlers) clear(c *gin.Context) {
	sc, ok := h.sessionCart(c)
	if !ok {
		return
	}
	sc.Clear()
	c.JSON(http.StatusOK, domain.DoneData("cart cleared", viewOf(sc)))
}

// checkout builds an order proposal from the session cart and runs it through
// the validation and persistence chain. The cart is cleared only on success.
func (h *cartHandlers) checkout(c *gin.Context) {
	sc, ok := h.sessionCart(c)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.Fail[int64]("invalid request body"))
		return
	}
	if sc.IsEmpty() {
		c.JSON(http.StatusOK, domain.Fail[int64]("order must contain at least one product"))
		return
	}

	proposal := sc.Proposal(req.CustomerID, req.ShippingAddressID, req.PaymentMethodID)
	resp := h.orders.Create(c.Request.Context(), proposal)
	if resp.Success {
		sc.Clear()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *cartHandlers) sessionCart(c *gin.Context) (*cart.Cart, bool) {
	token := c.GetHeader(sessionHeader)
	sc, err := h.sessions.Cart(token)
	if err != nil {
		if errors.Is(err, sessionsvc.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, domain.Fail[cartView]("missing or expired session token"))
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, domain.Fail[cartView]("session lookup failed"))
		return nil, false
	}
	return sc, true
}

func viewOf(sc *cart.Cart) cartView {
	return cartView{
		Lines:         sc.Items(),
		TotalQuantity: sc.TotalQuantity(),
		Subtotal:      sc.Subtotal(),
		Tax:           sc.Tax(),
		Total:         sc.Total(),
		Empty:         sc.IsEmpty(),
	}
}
