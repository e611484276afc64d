package database

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidBatch   = errors.New("batch size must be positive")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrMissingReturns = errors.New("returns is required")
)
