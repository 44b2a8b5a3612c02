package categories

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/infra/cache"
)

// Service сервис категорий посещений.
// Категории меняются только администратором вне сервиса, поэтому список кэшируется.
type Service struct {
	repo   CategoryRepository
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса категорий
func NewService(repo CategoryRepository, cache Cache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает все категории по возрастанию id.
// Ошибки кэша не прерывают запрос: читаем из БД.
func (s *Service) List(ctx context.Context) ([]domain.VisitCategory, error) {
	var cached []domain.VisitCategory
	found, err := s.cache.Get(ctx, cache.CategoriesKey(), &cached)
	if err != nil {
		s.logger.Warn("ListCategories: cache read failed: %v", err)
	}
	if found {
		return cached, nil
	}

	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Set(ctx, cache.CategoriesKey(), categories); err != nil {
		s.logger.Warn("ListCategories: cache write failed: %v", err)
	}

	s.logger.Info("ListCategories: loaded %d categories from store", len(categories))
	return categories, nil
}
