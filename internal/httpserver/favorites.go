package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	favoritesvc "boutique-backend/internal/service/favorite"
)

type favoriteHandlers struct {
	svc *favoritesvc.Service
}

func (h *favoriteHandlers) toggle(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	articleID, ok := paramID(c, "articleID")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Toggle(c.Request.Context(), customerID, articleID))
}

func (h *favoriteHandlers) remove(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	articleID, ok := paramID(c, "articleID")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Remove(c.Request.Context(), customerID, articleID))
}

func (h *favoriteHandlers) list(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.ListByCustomer(c.Request.Context(), customerID))
}
