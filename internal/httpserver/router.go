package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	orders := &orderHandlers{svc: deps.OrderSvc}
	router.POST("/orders", orders.create)
	router.GET("/orders", orders.listAll)
	router.GET("/orders/:id", orders.detail)
	router.PATCH("/orders/:id/status", orders.updateStatus)
	router.POST("/orders/:id/cancel", orders.cancel)
	router.GET("/payment-methods", orders.paymentMethods)
	router.GET("/customers/:id/orders", orders.listByCustomer)

	favorites := &favoriteHandlers{svc: deps.FavoriteSvc}
	router.POST("/customers/:id/favorites/:articleID/toggle", favorites.toggle)
	router.DELETE("/customers/:id/favorites/:articleID", favorites.remove)
	router.GET("/customers/:id/favorites", favorites.list)

	carts := &cartHandlers{sessions: deps.SessionSvc, orders: deps.OrderSvc}
	router.POST("/sessions", carts.createSession)
	router.GET("/cart", carts.show)
	router.POST("/cart/items", carts.addItem)
	router.PATCH("/cart/items/:variantID", carts.updateItem)
	router.DELETE("/cart/items/:variantID", carts.removeItem)
	router.DELETE("/cart", carts.clear)
	router.POST("/cart/checkout", carts.checkout)

	return router
}
