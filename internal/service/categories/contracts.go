package categories

import (
	"context"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.VisitCategory, error)
}

// Cache интерфейс кэша запросов
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
