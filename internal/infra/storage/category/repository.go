package category

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VisitService/pkg/psqlbuilder"
)

// Repository репозиторий категорий посещений (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все категории, отсортированные по id
func (r *Repository) GetAll(ctx context.Context) ([]domain.VisitCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("visit_categories").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]domain.VisitCategory, 0)
	for rows.Next() {
		var c domain.VisitCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}
