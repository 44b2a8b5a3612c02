package lookup_reservations

import (
	"context"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByGuest ищет бронирования по точному совпадению телефона и PIN
	GetByGuest(ctx context.Context, phone, password string) ([]*domain.ReservationWithCategory, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
