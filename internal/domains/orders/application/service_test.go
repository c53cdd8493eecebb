package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fonoma/order-totals-api/internal/domains/orders/domain"
)

func TestComputeTotal_ValidList(t *testing.T) {
	svc := NewService()

	list, err := domain.NewOrderList([]domain.Order{
		{ID: 1, Item: "Laptop", Quantity: 1, Price: 999.99, Status: domain.StatusCompleted},
		{ID: 3, Item: "Headphones", Quantity: 3, Price: 99.90, Status: domain.StatusCompleted},
	}, domain.CriterionCompleted)
	require.NoError(t, err)

	total, err := svc.ComputeTotal(context.Background(), list)
	require.NoError(t, err)
	require.InDelta(t, 1299.69, total, 1e-9)
}

func TestComputeTotal_EmptyList(t *testing.T) {
	svc := NewService()

	list, err := domain.NewOrderList(nil, domain.CriterionAll)
	require.NoError(t, err)

	total, err := svc.ComputeTotal(context.Background(), list)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestComputeTotal_NilList(t *testing.T) {
	svc := NewService()

	_, err := svc.ComputeTotal(context.Background(), nil)
	require.Error(t, err)
}

func TestComputeTotal_InvalidListWrapsValidationError(t *testing.T) {
	svc := NewService()

	// bypass the constructor to simulate a list mutated after construction
	list := &domain.OrderList{
		Orders:    []domain.Order{{ID: 1, Item: "Laptop", Quantity: 0, Price: 10.0, Status: domain.StatusCompleted}},
		Criterion: domain.CriterionCompleted,
	}

	_, err := svc.ComputeTotal(context.Background(), list)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
}
