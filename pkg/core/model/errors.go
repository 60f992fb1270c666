package model

import "errors"

// Error kinds shared across the campaign packages.
// Callers wrap these with context and match them with errors.Is.
var (
	ErrDuplicateEntity      = errors.New("duplicate entity")
	ErrUnknownEntity        = errors.New("unknown entity")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrCapacityUndefined    = errors.New("capacity undefined")
)
