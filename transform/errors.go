package transform

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrNoTable       = errors.New("no table provided")
	ErrEmptyPipeline = errors.New("pipeline has no steps")
)

// NotFittedError reports a stateful transform applied before Fit.
type NotFittedError struct {
	Transform string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s is not fitted yet; call Fit before %s", e.Transform, e.Method)
}

// NewNotFittedError returns a stack-annotated NotFittedError.
func NewNotFittedError(transform, method string) error {
	return errors.WithStack(&NotFittedError{Transform: transform, Method: method})
}
