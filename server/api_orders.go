package apiserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	ordershttpmapper "github.com/fonoma/order-totals-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/fonoma/order-totals-api/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport with the orders service.
type OrdersAPI struct {
	service ordersports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Post /fonoma/backend/solution
// Computes the filtered total of the submitted orders.
func (api *OrdersAPI) SolveOrders(c *gin.Context) {
	var payload ordershttpmapper.SolutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	list, err := ordershttpmapper.ToDomainOrderList(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	total, err := api.service.ComputeTotal(c.Request.Context(), list)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// Get /fonoma/backend/example
// Returns a greeting, optionally addressed to the name query parameter.
func (api *OrdersAPI) Example(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		c.JSON(http.StatusOK, fmt.Sprintf("Hello, %s !!!", name))
		return
	}
	c.JSON(http.StatusOK, "Hello !!!")
}
