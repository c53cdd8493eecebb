package domain

import "fmt"

// ValidationKind tags the construction rule an input violated.
type ValidationKind string

const (
	KindNegativePrice       ValidationKind = "negative_price"
	KindNonPositiveQuantity ValidationKind = "non_positive_quantity"
	KindInvalidStatus       ValidationKind = "invalid_status"
	KindInvalidCriterion    ValidationKind = "invalid_criterion"
)

// ValidationError reports the rule a raw order or criterion violated.
// It is always client-caused and never retryable.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// Is matches any ValidationError of the same kind, so callers can check
// against the exported sentinels with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks. Constructors return errors carrying the
// same kind plus a detail naming the offending value.
var (
	ErrNegativePrice       = &ValidationError{Kind: KindNegativePrice, Detail: "price cannot be negative"}
	ErrNonPositiveQuantity = &ValidationError{Kind: KindNonPositiveQuantity, Detail: "quantity must be greater than 0"}
	ErrInvalidStatus       = &ValidationError{Kind: KindInvalidStatus, Detail: "order status is invalid"}
	ErrInvalidCriterion    = &ValidationError{Kind: KindInvalidCriterion, Detail: "criterion is invalid"}
)

func newValidationError(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
