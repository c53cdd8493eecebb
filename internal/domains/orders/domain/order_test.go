package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func referenceOrders() []Order {
	return []Order{
		{ID: 1, Item: "Laptop", Quantity: 1, Price: 999.99, Status: StatusCompleted},
		{ID: 2, Item: "Smartphone", Quantity: 2, Price: 499.95, Status: StatusPending},
		{ID: 3, Item: "Headphones", Quantity: 3, Price: 99.90, Status: StatusCompleted},
		{ID: 4, Item: "Mouse", Quantity: 4, Price: 24.99, Status: StatusCanceled},
	}
}

func TestNewOrder_Valid(t *testing.T) {
	order, err := NewOrder(1, "Laptop", 2, 999.99, StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, int64(1), order.ID)
	require.Equal(t, StatusCompleted, order.Status)
}

func TestNewOrder_NegativePrice(t *testing.T) {
	_, err := NewOrder(1, "Laptop", 1, -100.0, StatusCompleted)
	require.ErrorIs(t, err, ErrNegativePrice)
	require.Contains(t, err.Error(), "-100")
	require.Contains(t, err.Error(), "cannot be negative")
}

func TestNewOrder_NonPositiveQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		_, err := NewOrder(1, "Laptop", quantity, 100.0, StatusCompleted)
		require.ErrorIs(t, err, ErrNonPositiveQuantity)
	}
}

func TestNewOrder_InvalidStatus(t *testing.T) {
	_, err := NewOrder(1, "Laptop", 1, 100.0, Status("invalid_status"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewOrder_ZeroPriceAndAnyIDItem(t *testing.T) {
	order, err := NewOrder(0, "", 1, 0.0, StatusPending)
	require.NoError(t, err)
	require.Zero(t, order.Price)
}

func TestNewOrderList_InvalidCriterion(t *testing.T) {
	_, err := NewOrderList(referenceOrders(), Criterion("invalid_criterion"))
	require.ErrorIs(t, err, ErrInvalidCriterion)

	// criterion validity does not depend on the orders content
	_, err = NewOrderList(nil, Criterion("invalid_criterion"))
	require.ErrorIs(t, err, ErrInvalidCriterion)
}

func TestNewOrderList_EmptyOrdersIsValid(t *testing.T) {
	for _, criterion := range []Criterion{CriterionCompleted, CriterionPending, CriterionCanceled, CriterionAll} {
		list, err := NewOrderList(nil, criterion)
		require.NoError(t, err)
		require.Zero(t, list.Total())
	}
}

func TestNewOrderList_FirstInvalidOrderPropagates(t *testing.T) {
	orders := []Order{
		{ID: 1, Item: "Laptop", Quantity: 1, Price: 100.0, Status: StatusCompleted},
		{ID: 2, Item: "Mouse", Quantity: 0, Price: 10.0, Status: StatusCompleted},
		{ID: 3, Item: "Keyboard", Quantity: 1, Price: -5.0, Status: StatusCompleted},
	}
	_, err := NewOrderList(orders, CriterionCompleted)
	require.ErrorIs(t, err, ErrNonPositiveQuantity)
}

func TestTotal_FiltersByCriterion(t *testing.T) {
	tests := []struct {
		criterion Criterion
		want      float64
	}{
		{CriterionCompleted, 1299.69},
		{CriterionPending, 999.90},
		{CriterionCanceled, 99.96},
		{CriterionAll, 2399.55},
	}
	for _, tc := range tests {
		list, err := NewOrderList(referenceOrders(), tc.criterion)
		require.NoError(t, err)
		require.InDelta(t, tc.want, list.Total(), 1e-9, "criterion %s", tc.criterion)
	}
}

func TestTotal_NoMatchingOrders(t *testing.T) {
	orders := []Order{
		{ID: 1, Item: "Laptop", Quantity: 1, Price: 100.0, Status: StatusCompleted},
	}
	list, err := NewOrderList(orders, CriterionPending)
	require.NoError(t, err)
	require.Zero(t, list.Total())
}

func TestTotal_RoundsToTwoDecimals(t *testing.T) {
	orders := []Order{
		{ID: 1, Item: "Item1", Quantity: 3, Price: 33.333, Status: StatusCompleted},
	}
	list, err := NewOrderList(orders, CriterionCompleted)
	require.NoError(t, err)
	// 33.333 * 3 = 99.999 rounds to 100.00
	require.InDelta(t, 100.0, list.Total(), 1e-9)
}

func TestTotal_BankersRounding(t *testing.T) {
	tests := []struct {
		price float64
		want  float64
	}{
		{10.125, 10.12}, // half rounds to the even neighbor
		{10.135, 10.14},
	}
	for _, tc := range tests {
		list, err := NewOrderList([]Order{
			{ID: 1, Item: "Item", Quantity: 1, Price: tc.price, Status: StatusCompleted},
		}, CriterionCompleted)
		require.NoError(t, err)
		require.InDelta(t, tc.want, list.Total(), 1e-9, "price %v", tc.price)
	}
}
