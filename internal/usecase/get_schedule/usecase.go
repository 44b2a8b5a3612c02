package get_schedule

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/infra/cache"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// UseCase use case получения расписания слотов на день
type UseCase struct {
	categoryService CategoryService
	reservationRepo ReservationRepository
	cache           Cache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	categoryService CategoryService,
	reservationRepo ReservationRepository,
	cache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		categoryService: categoryService,
		reservationRepo: reservationRepo,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания.
// Категории и бронирования на дату загружаются параллельно; ошибка любой
// из загрузок делает запрос неуспешным.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Если дата не указана, берем сегодняшнюю
	date := req.Date
	if date.IsZero() {
		date = types.DateOf(uc.timeProvider.Now())
	}

	uc.logger.Info("GetSchedule: date=%s", date)

	// 2. Загружаем категории и бронирования параллельно
	var (
		categories   []domain.VisitCategory
		reservations []*domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		categories, err = uc.categoryService.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to get categories: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		reservations, err = uc.loadReservations(gctx, date)
		if err != nil {
			return fmt.Errorf("failed to get reservations: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetSchedule: date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Строим сетку слотов
	schedules := buildSchedules(categories, reservations)

	uc.logger.Info("GetSchedule: built %d schedules for date=%s, reserved hours=%d",
		len(schedules), date, len(reservations))

	return &Response{
		Date:      date,
		PrevDate:  date.AddDays(-1),
		NextDate:  date.AddDays(1),
		Schedules: schedules,
	}, nil
}

// loadReservations получает бронирования на дату через кэш.
// В кэш кладутся бронирования без PIN: для расписания он не нужен.
//
// Поколение читается ДО запроса в БД. Если бронирование закоммитится между
// чтением из БД и записью в кэш, создание увеличит поколение, и устаревшая
// запись окажется под ключом, который уже никто не читает.
func (uc *UseCase) loadReservations(ctx context.Context, date types.Date) ([]*domain.Reservation, error) {
	gen, err := uc.cache.Generation(ctx, cache.ReservationsGenerationKey(date))
	if err != nil {
		uc.logger.Warn("GetSchedule: cache generation read failed for date=%s, bypassing cache: %v", date, err)
		return uc.reservationRepo.GetByDate(ctx, date)
	}

	key := cache.VersionedKey(cache.ReservationsKey(date), gen)

	var cached []*domain.Reservation
	found, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.logger.Warn("GetSchedule: cache read failed for %s: %v", key, err)
	}
	if found {
		return cached, nil
	}

	reservations, err := uc.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for _, r := range reservations {
		r.GuestPassword = ""
	}

	if err := uc.cache.Set(ctx, key, reservations); err != nil {
		uc.logger.Warn("GetSchedule: cache write failed for %s: %v", key, err)
	}

	return reservations, nil
}
