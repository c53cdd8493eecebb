package mapper

import (
	ordersdomain "github.com/fonoma/order-totals-api/internal/domains/orders/domain"
)

// OrderPayload is the transport-layer shape of a single order. Fields are
// pointers so binding can distinguish an absent field from a zero value.
type OrderPayload struct {
	ID       *int64   `json:"id" binding:"required"`
	Item     *string  `json:"item" binding:"required"`
	Quantity *int     `json:"quantity" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Status   *string  `json:"status" binding:"required"`
}

// SolutionRequest is the body of the solution endpoint. A missing orders
// field fails binding, an empty one is valid; criterion content is validated
// by the domain.
type SolutionRequest struct {
	Orders    []OrderPayload `json:"orders" binding:"required,dive"`
	Criterion *string        `json:"criterion" binding:"required"`
}

// ToDomainOrderList converts a bound request into a validated domain list.
// The first order failing domain validation aborts the conversion.
func ToDomainOrderList(req SolutionRequest) (*ordersdomain.OrderList, error) {
	orders := make([]ordersdomain.Order, 0, len(req.Orders))
	for _, payload := range req.Orders {
		order, err := ordersdomain.NewOrder(
			*payload.ID,
			*payload.Item,
			*payload.Quantity,
			*payload.Price,
			ordersdomain.Status(*payload.Status),
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return ordersdomain.NewOrderList(orders, ordersdomain.Criterion(*req.Criterion))
}
