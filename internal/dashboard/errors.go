package dashboard

import "errors"

var (
	// ErrNotFound возвращается, когда сущность с указанным id отсутствует
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput возвращается для значений формы вне допустимых значений
	ErrInvalidInput = errors.New("invalid input")
)
