package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VisitService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
const uniqueViolation = pq.ErrorCode("23505")

var reservationColumns = []string{
	"r.id",
	"r.category_id",
	"r.visit_date",
	"r.visit_time",
	"r.guest_name",
	"r.guest_phone",
	"r.guest_password",
	"r.created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если слот уже занят, БД отклоняет вставку по уникальному индексу
// и метод возвращает ErrSlotAlreadyReserved. Предварительной проверки нет.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"category_id",
			"visit_date",
			"visit_time",
			"guest_name",
			"guest_phone",
			"guest_password",
		).
		Values(
			reservation.CategoryID,
			reservation.VisitDate,
			reservation.VisitTime,
			reservation.GuestName,
			reservation.GuestPhone,
			reservation.GuestPassword,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotAlreadyReserved
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, wrapStoreError(err))
	}

	reservation.CreatedAt = createdAt.Time

	return reservation, nil
}

// GetByDate возвращает все бронирования на дату (по всем категориям), по возрастанию часа
func (r *Repository) GetByDate(ctx context.Context, date types.Date) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.visit_date": date}).
		OrderBy("r.visit_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		if err := rows.Scan(
			&res.ID,
			&res.CategoryID,
			&res.VisitDate,
			&res.VisitTime,
			&res.GuestName,
			&res.GuestPhone,
			&res.GuestPassword,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// GetByGuest возвращает бронирования гостя по точному совпадению телефона и PIN,
// вместе с категорией. Сортировка: дата по убыванию, затем час по возрастанию.
func (r *Repository) GetByGuest(ctx context.Context, phone, password string) ([]*domain.ReservationWithCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, reservationColumns...), "c.id", "c.name")

	query, args, err := psqlbuilder.Select(columns...).
		From("reservations r").
		Join("visit_categories c ON c.id = r.category_id").
		Where(squirrel.Eq{"r.guest_phone": phone}).
		Where(squirrel.Eq{"r.guest_password": password}).
		OrderBy("r.visit_date DESC", "r.visit_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuest - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuest - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ReservationWithCategory, 0)
	for rows.Next() {
		var item domain.ReservationWithCategory
		var createdAt sql.NullTime

		if err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.VisitDate,
			&item.VisitTime,
			&item.GuestName,
			&item.GuestPhone,
			&item.GuestPassword,
			&createdAt,
			&item.Category.ID,
			&item.Category.Name,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByGuest - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByGuest - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение уникальности в PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// wrapStoreError сохраняет текст ошибки PostgreSQL, чтобы его можно было показать пользователю
func wrapStoreError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Message != "" {
		return &StoreError{Message: pqErr.Message, Err: err}
	}
	return err
}
