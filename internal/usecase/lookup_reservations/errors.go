package lookup_reservations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном телефоне или PIN
	ErrInvalidInput = errors.New("lookup_reservations: invalid input data")

	// ErrInternal возвращается при ошибке чтения бронирований
	ErrInternal = errors.New("lookup_reservations: internal error")
)
