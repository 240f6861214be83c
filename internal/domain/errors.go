package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsplittableGroup = errors.New("transaction group cannot be split under the threshold")
	ErrOracleUnavailable = errors.New("authoritative tax result unavailable")
	ErrInvalidDateRange  = errors.New("invalid date range")
)
