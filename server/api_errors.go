package apiserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	ordersdomain "github.com/fonoma/order-totals-api/internal/domains/orders/domain"
	apierrors "github.com/fonoma/order-totals-api/internal/shared/errors"
)

// problemResponder maps service errors to RFC 7807 responses. Domain
// validation failures become 422 problems carrying the violated rule;
// anything unmapped falls back to a 500.
var problemResponder = apierrors.NewChainedResponder("", mapValidationError)

func mapValidationError(err error) (apierrors.ProblemDetail, bool) {
	var validationErr *ordersdomain.ValidationError
	if !errors.As(err, &validationErr) {
		return apierrors.ProblemDetail{}, false
	}
	return apierrors.ErrValidation.
		WithDetail(validationErr.Detail).
		WithExtension("rule", string(validationErr.Kind)), true
}

// respondBindingError translates gin binding failures into RFC 7807
// responses. Missing required fields yield a field-level validation problem;
// anything else about the body is a malformed payload. Both are client
// faults, so both answer 422.
func respondBindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		problemResponder.ValidationFailed(c, fields)
		return
	}
	problemResponder.Respond(c, apierrors.ErrMalformedPayload.WithDetail(err.Error()))
}

// respondServiceError runs the error through the mapper chain.
func respondServiceError(c *gin.Context, err error) {
	problemResponder.RespondError(c, err)
}
