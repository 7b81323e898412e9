package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidURL         = fmt.Errorf("%w: URL must start with http(s)://", ErrInvalidInput)
	ErrEmptyURL           = fmt.Errorf("%w: empty URL", ErrInvalidInput)
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrLinkNotFound       = errors.New("link not found")
	ErrForbidden          = errors.New("forbidden: not your link")
)
