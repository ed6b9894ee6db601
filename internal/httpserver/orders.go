package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boutique-backend/internal/domain"
	ordersvc "boutique-backend/internal/service/order"
)

type orderHandlers struct {
	svc *ordersvc.Service
}

func (h *orderHandlers) create(c *gin.Context) {
	var proposal domain.OrderProposal
	if err := c.ShouldBindJSON(&proposal); err != nil {
		c.JSON(http.StatusBadRequest, domain.Fail[int64]("invalid request body"))
		return
	}
	c.JSON(http.StatusOK, h.svc.Create(c.Request.Context(), proposal))
}

func (h *orderHandlers) listAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AllOrders(c.Request.Context()))
}

func (h *orderHandlers) listByCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.OrdersByCustomer(c.Request.Context(), customerID))
}

func (h *orderHandlers) detail(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.OrderDetail(c.Request.Context(), orderID))
}

func (h *orderHandlers) updateStatus(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.Fail[bool]("invalid request body"))
		return
	}
	c.JSON(http.StatusOK, h.svc.UpdateStatus(c.Request.Context(), orderID, req.Status))
}

func (h *orderHandlers) cancel(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Cancel(c.Request.Context(), orderID))
}

func (h *orderHandlers) paymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PaymentMethods(c.Request.Context()))
}

// paramID parses a positive integer path parameter, answering 400 itself when
// the value is not a number at all. Range rules stay in the services.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.Fail[struct{}]("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
