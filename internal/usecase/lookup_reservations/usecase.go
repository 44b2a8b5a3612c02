package lookup_reservations

import (
	"context"
	"fmt"
)

// UseCase use case для поиска бронирований гостя по телефону и PIN
type UseCase struct {
	reservationRepo ReservationRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет поиск. Пустой результат не является ошибкой,
// ошибка хранилища возвращается как ErrInternal.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LookupReservations: validation failed: %v", err)
		uc.metrics.IncLookup(resultInvalid)
		return nil, err
	}

	// 2. Читаем бронирования (PIN в лог не пишем)
	found, err := uc.reservationRepo.GetByGuest(ctx, req.GuestPhone, req.GuestPassword)
	if err != nil {
		uc.logger.Error("LookupReservations: failed to get reservations for phone=%s: %v", maskPhone(req.GuestPhone), err)
		uc.metrics.IncLookup(resultError)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	reservations := make([]Reservation, 0, len(found))
	for _, r := range found {
		reservations = append(reservations, Reservation{
			ID:         r.ID,
			Category:   r.Category,
			VisitDate:  r.VisitDate,
			VisitTime:  r.VisitTime,
			GuestName:  r.GuestName,
			GuestPhone: r.GuestPhone,
			CreatedAt:  r.CreatedAt,
		})
	}

	if len(reservations) == 0 {
		uc.metrics.IncLookup(resultEmpty)
	} else {
		uc.metrics.IncLookup(resultFound)
	}

	uc.logger.Info("LookupReservations: found %d reservations for phone=%s", len(reservations), maskPhone(req.GuestPhone))

	return &Response{Reservations: reservations}, nil
}

// maskPhone оставляет в логах только последние 4 цифры номера
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "***" + phone[len(phone)-4:]
}
