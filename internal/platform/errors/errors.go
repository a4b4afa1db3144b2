package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNoDraft           = errors.New("no draft in progress")
	ErrActiveDraftExists = errors.New("draft already in progress")
	ErrSessionLimit      = errors.New("free session limit reached")
	ErrSenseiRestricted  = errors.New("mode is restricted to another sensei")
)
