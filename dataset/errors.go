package dataset

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DataFormatError reports a malformed input file: a missing required
// column, an unparsable timestamp, or a non-numeric cell.
type DataFormatError struct {
	Path   string
	Column string
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: column %q: %s", e.Path, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// NewDataFormatError returns a stack-annotated DataFormatError.
func NewDataFormatError(path, column, reason string) error {
	return errors.WithStack(&DataFormatError{Path: path, Column: column, Reason: reason})
}
