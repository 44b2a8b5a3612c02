package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache интерфейс кэша запросов (только инвалидация)
type Cache interface {
	// Bump увеличивает поколение ключа, после чего прежние версии данных не читаются
	Bump(ctx context.Context, key string) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncReservationCreated(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
