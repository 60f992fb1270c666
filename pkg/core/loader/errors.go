package loader

import (
	"errors"
	"fmt"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

// Reasons a people file line is rejected
var (
	ErrInvalidHeader     = fmt.Errorf("invalid header: %w", model.ErrInvalidConfiguration)
	ErrInvalidFieldCount = errors.New("invalid field count")
	ErrInvalidYear       = errors.New("invalid birth year")
	ErrDuplicateSSN      = fmt.Errorf("duplicate ssn: %w", model.ErrDuplicateEntity)
)

// LineError wraps a rejection reason with the offending line
type LineError struct {
	Line int
	Raw  string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Raw)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
