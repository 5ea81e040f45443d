package evaluate

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var ErrNoValidPairs = errors.New("no defined predicted/actual pairs to score")

// ShapeMismatchError reports predicted and actual sequences of different
// lengths.
type ShapeMismatchError struct {
	Metric    string
	Predicted int
	Actual    int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: predicted has length %d, but actual has length %d", e.Metric, e.Predicted, e.Actual)
}

// NewShapeMismatchError returns a stack-annotated ShapeMismatchError.
func NewShapeMismatchError(metric string, predicted, actual int) error {
	return errors.WithStack(&ShapeMismatchError{Metric: metric, Predicted: predicted, Actual: actual})
}
