package application

import (
	"errors"
	"fmt"

	"github.com/fonoma/order-totals-api/internal/domains/orders/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
