package get_categories

import (
	"context"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.VisitCategory, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
