package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось подобрать свободный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")
)
