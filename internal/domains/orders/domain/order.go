package domain

import "github.com/shopspring/decimal"

// Status enumerates order fulfillment states.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCanceled  Status = "canceled"
)

// Criterion selects which orders contribute to a total. It is either a
// Status value or CriterionAll, which matches every order.
type Criterion string

const (
	CriterionCompleted Criterion = Criterion(StatusCompleted)
	CriterionPending   Criterion = Criterion(StatusPending)
	CriterionCanceled  Criterion = Criterion(StatusCanceled)
	CriterionAll       Criterion = "all"
)

// Order models a single purchase line item.
type Order struct {
	ID       int64
	Item     string
	Quantity int
	Price    float64
	Status   Status
}

// NewOrder validates and constructs an Order. ID and Item accept any value
// of their type.
func NewOrder(id int64, item string, quantity int, price float64, status Status) (*Order, error) {
	order := &Order{
		ID:       id,
		Item:     item,
		Quantity: quantity,
		Price:    price,
		Status:   status,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the order.
func (o *Order) Validate() error {
	if o.Price < 0 {
		return newValidationError(KindNegativePrice, "price %v cannot be negative", o.Price)
	}
	if o.Quantity <= 0 {
		return newValidationError(KindNonPositiveQuantity, "quantity %d must be greater than 0", o.Quantity)
	}
	if !isValidStatus(o.Status) {
		return newValidationError(KindInvalidStatus, "status %q must be one of [completed pending canceled]", o.Status)
	}
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusCompleted, StatusPending, StatusCanceled:
		return true
	default:
		return false
	}
}

func isValidCriterion(criterion Criterion) bool {
	switch criterion {
	case CriterionCompleted, CriterionPending, CriterionCanceled, CriterionAll:
		return true
	default:
		return false
	}
}

func (c Criterion) matches(status Status) bool {
	return c == CriterionAll || Criterion(status) == c
}

// OrderList is a request-scoped batch of orders plus the criterion used to
// filter them. Constructed fresh per request and discarded afterwards.
type OrderList struct {
	Orders    []Order
	Criterion Criterion
}

// NewOrderList validates and constructs an OrderList. The criterion check is
// independent of the orders; each order is validated in sequence and the
// first failure propagates. An empty orders slice is valid.
func NewOrderList(orders []Order, criterion Criterion) (*OrderList, error) {
	list := &OrderList{Orders: orders, Criterion: criterion}
	if err := list.Validate(); err != nil {
		return nil, err
	}
	return list, nil
}

// Validate enforces invariants on the list and each contained order.
func (l *OrderList) Validate() error {
	if !isValidCriterion(l.Criterion) {
		return newValidationError(KindInvalidCriterion, "criterion %q must be one of [completed pending canceled all]", l.Criterion)
	}
	for i := range l.Orders {
		if err := l.Orders[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Total sums price*quantity over the orders matching the criterion, rounded
// to two decimals with banker's rounding. Pure over any validated list; an
// empty or non-matching list totals 0.
func (l *OrderList) Total() float64 {
	total := decimal.Zero
	for _, order := range l.Orders {
		if !l.Criterion.matches(order.Status) {
			continue
		}
		line := decimal.NewFromFloat(order.Price).Mul(decimal.NewFromInt(int64(order.Quantity)))
		total = total.Add(line)
	}
	return total.RoundBank(2).InexactFloat64()
}
