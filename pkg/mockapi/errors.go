package mockapi

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/storefrontkit/checkout/pkg/types"
)

// ErrEmptyQuery is returned when a query document is structurally empty
// after stripping its outer operation block. It indicates a programming
// error in query construction and is never swallowed into userErrors.
var ErrEmptyQuery = errors.New("empty query")

// ValidationError is a business-level rejection carrying one entry per
// failed field. Handlers translate it into the userErrors list of the
// response envelope instead of propagating it.
type ValidationError struct {
	Failures []types.UserError
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Failures[0].Message)
	}
	return fmt.Sprintf("validation failed: %d fields", len(e.Failures))
}

// newMandatoryError builds a ValidationError with one "Field X is
// mandatory" entry per missing field name.
func newMandatoryError(fields ...string) *ValidationError {
	failures := make([]types.UserError, 0, len(fields))
	for _, field := range fields {
		failures = append(failures, types.UserError{
			Field:   []string{field},
			Message: fmt.Sprintf("Field %s is mandatory", field),
		})
	}
	return &ValidationError{Failures: failures}
}

// newNotFoundError builds the ValidationError used for lookups of absent
// entities.
func newNotFoundError() *ValidationError {
	return &ValidationError{Failures: []types.UserError{
		{Field: []string{"id"}, Message: "Non existing"},
	}}
}

// userErrors extracts the userErrors list from err. Entries without a code
// get a random numeric one, mirroring the real API's opaque error codes.
// The second return reports whether err was a business-level rejection;
// when false the error must propagate to the caller instead.
func userErrors(err error) ([]types.UserError, bool) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	out := make([]types.UserError, 0, len(verr.Failures))
	for _, failure := range verr.Failures {
		if failure.Code == 0 {
			failure.Code = 10000 + rand.Intn(10001)
		}
		out = append(out, failure)
	}
	return out, true
}
