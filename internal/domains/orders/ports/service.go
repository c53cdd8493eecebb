package ports

import (
	"context"

	"github.com/fonoma/order-totals-api/internal/domains/orders/domain"
)

// Service exposes the order aggregation use case to adapters.
type Service interface {
	ComputeTotal(ctx context.Context, list *domain.OrderList) (float64, error)
}
