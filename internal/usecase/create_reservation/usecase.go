package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/infra/cache"
	reservationRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	cache           Cache
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	cache Cache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		cache:           cache,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Занятость слота не проверяется заранее: единственный сигнал конфликта -
// нарушение уникальности (visit_date, visit_time) при вставке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: category=%d, date=%s, time=%d",
		req.CategoryID, req.VisitDate, req.VisitTime)

	// 1. Проверяем, что слот выбран
	if err := validateSelection(req); err != nil {
		uc.logger.Warn("CreateReservation: selection missing: category=%d, date=%q, time=%d",
			req.CategoryID, req.VisitDate, req.VisitTime)
		uc.metrics.IncReservationCreated(resultInvalid)
		return nil, err
	}

	// 2. Валидация полей гостя
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservationCreated(resultInvalid)
		return nil, err
	}

	reservation := &domain.Reservation{
		CategoryID:    req.CategoryID,
		VisitDate:     req.VisitDate,
		VisitTime:     req.VisitTime,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		GuestPassword: req.GuestPassword,
	}

	var result *domain.Reservation

	// 3. Сохраняем бронирование
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotAlreadyReserved) {
			uc.logger.Warn("CreateReservation: slot date=%s, time=%d already reserved", req.VisitDate, req.VisitTime)
			uc.metrics.IncReservationCreated(resultConflict)
			return nil, ErrSlotAlreadyReserved
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		uc.metrics.IncReservationCreated(resultError)
		return nil, fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
	}

	// 4. Переводим кэш расписания на дату в новое поколение, чтобы следующий запрос увидел новый слот.
	// Делается строго после коммита.
	if err := uc.cache.Bump(ctx, cache.ReservationsGenerationKey(result.VisitDate)); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate cache for date=%s: %v", result.VisitDate, err)
	}

	uc.metrics.IncReservationCreated(resultCreated)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		CategoryID: result.CategoryID,
		VisitDate:  result.VisitDate,
		VisitTime:  result.VisitTime,
		GuestName:  result.GuestName,
		GuestPhone: result.GuestPhone,
		CreatedAt:  result.CreatedAt,
	}, nil
}
