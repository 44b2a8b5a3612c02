package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// CategoryService интерфейс сервиса категорий
type CategoryService interface {
	List(ctx context.Context) ([]domain.VisitCategory, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDate получает все бронирования на дату по всем категориям
	GetByDate(ctx context.Context, date types.Date) ([]*domain.Reservation, error)
}

// Cache интерфейс кэша запросов
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Generation(ctx context.Context, key string) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
