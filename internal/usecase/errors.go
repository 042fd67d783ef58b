package usecase

import "errors"

// Sentinels returned by PortalService; httpapi maps them to status codes.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("club or competition not found")
	ErrUnauthorized          = errors.New("club session required")
	ErrDependencyUnavailable = errors.New("booking store unavailable")
)
