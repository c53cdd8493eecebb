package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/fonoma/order-totals-api/internal/shared/errors"
)

// ApiHandleFunctions groups the handler implementations mounted by NewRouter.
type ApiHandleFunctions struct {
	OrdersAPI OrdersAPI
}

// NewRouter builds the gin engine with all API routes mounted. Extra
// middleware runs before the route handlers.
func NewRouter(handlers ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(middleware...)

	backend := router.Group("/fonoma/backend")
	backend.POST("/solution", handlers.OrdersAPI.SolveOrders)
	backend.GET("/example", handlers.OrdersAPI.Example)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		apierrors.Respond(c, apierrors.ErrNotFound.WithDetail("no route for "+c.Request.URL.Path))
	})

	return router
}
