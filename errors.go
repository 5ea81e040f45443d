package weatherfeat

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var ErrNoTable = errors.New("no table provided")

// ConfigurationError reports an invalid feature parameter such as a
// non-positive lag or an out-of-range window.
type ConfigurationError struct {
	Param  string
	Reason string
	Value  any
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (got: %v)", e.Param, e.Reason, e.Value)
}

// NewConfigurationError returns a stack-annotated ConfigurationError.
func NewConfigurationError(param, reason string, value any) error {
	return errors.WithStack(&ConfigurationError{Param: param, Reason: reason, Value: value})
}
