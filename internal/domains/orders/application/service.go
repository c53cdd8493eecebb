package application

import (
	"context"
	"errors"

	"github.com/fonoma/order-totals-api/internal/domains/orders/domain"
	"github.com/fonoma/order-totals-api/internal/domains/orders/ports"
)

// Service orchestrates the order aggregation use case. It holds no state
// between calls, so concurrent requests need no locking.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ComputeTotal re-validates the list and returns the filtered total.
// Aggregation itself has no error paths; all invalidity is rejected here.
func (s *Service) ComputeTotal(_ context.Context, list *domain.OrderList) (float64, error) {
	if list == nil {
		return 0, errors.New("order list is nil")
	}
	if err := list.Validate(); err != nil {
		return 0, mapError(err)
	}
	return list.Total(), nil
}

var _ ports.Service = (*Service)(nil)
