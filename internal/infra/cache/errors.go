package cache

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("cache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("cache: failed to decode value")

	// ErrBackend возвращается при ошибке Redis
	ErrBackend = errors.New("cache: backend error")
)
