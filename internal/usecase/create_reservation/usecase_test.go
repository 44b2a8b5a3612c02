package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/infra/cache"
	reservationRepo "github.com/m04kA/SMC-VisitService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-VisitService/internal/validation"
	"github.com/m04kA/SMC-VisitService/pkg/logger"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

type fakeRepo struct {
	created []*domain.Reservation
	err     error
}

func (r *fakeRepo) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}
	reservation.ID = int64(len(r.created) + 1)
	reservation.CreatedAt = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	r.created = append(r.created, reservation)
	return reservation, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeCache struct {
	bumped []string
	err    error
}

func (c *fakeCache) Bump(ctx context.Context, key string) error {
	c.bumped = append(c.bumped, key)
	return c.err
}

type fakeMetrics struct {
	results []string
}

func (m *fakeMetrics) IncReservationCreated(result string) {
	m.results = append(m.results, result)
}

var visitDate = types.NewDate(2026, time.October, 20)

func validRequest() *Request {
	return &Request{
		CategoryID:    2,
		VisitDate:     visitDate,
		VisitTime:     14,
		GuestName:     "홍길동",
		GuestPhone:    "01012345678",
		GuestPassword: "1234",
	}
}

type fixture struct {
	repo    *fakeRepo
	tx      *fakeTxManager
	cache   *fakeCache
	metrics *fakeMetrics
	uc      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:    &fakeRepo{},
		tx:      &fakeTxManager{},
		cache:   &fakeCache{},
		metrics: &fakeMetrics{},
	}
	f.uc = NewUseCase(f.repo, f.tx, f.cache, f.metrics, logger.NewNop())
	return f
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(2), resp.CategoryID)
	assert.Equal(t, visitDate, resp.VisitDate)
	assert.Equal(t, 14, resp.VisitTime)
	assert.Equal(t, "홍길동", resp.GuestName)
	assert.Equal(t, "01012345678", resp.GuestPhone)
	assert.False(t, resp.CreatedAt.IsZero())

	require.Len(t, f.repo.created, 1)
	assert.Equal(t, "1234", f.repo.created[0].GuestPassword)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{cache.ReservationsGenerationKey(visitDate)}, f.cache.bumped)
	assert.Equal(t, []string{resultCreated}, f.metrics.results)
}

func TestExecute_CacheInvalidationFailureIsIgnored(t *testing.T) {
	f := newFixture()
	f.cache.err = errors.New("redis down")

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestExecute_SelectionRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"no category", func(r *Request) { r.CategoryID = 0 }},
		{"no date", func(r *Request) { r.VisitDate = types.Date{} }},
		{"no time", func(r *Request) { r.VisitTime = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrSelectionRequired)
			assert.Empty(t, f.repo.created)
			assert.Zero(t, f.tx.calls)
			assert.Empty(t, f.cache.bumped)
		})
	}
}

func TestExecute_SelectionNotRangeChecked(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.VisitTime = 23
	req.CategoryID = 999

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 23, f.repo.created[0].VisitTime)
}

func TestExecute_InvalidFieldsAreReportedTogether(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.GuestName = "홍"
	req.GuestPhone = "0212345678"
	req.GuestPassword = "12a4"

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	fields, ok := validation.FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, validation.MsgNameTooShort, fields[validation.FieldGuestName])
	assert.Equal(t, validation.MsgInvalidPhone, fields[validation.FieldGuestPhone])
	assert.Equal(t, validation.MsgPasswordDigitsOnly, fields[validation.FieldGuestPassword])
	assert.Empty(t, f.repo.created)
	assert.Equal(t, []string{resultInvalid}, f.metrics.results)
}

func TestExecute_SlotAlreadyReserved(t *testing.T) {
	f := newFixture()
	f.repo.err = reservationRepo.ErrSlotAlreadyReserved

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotAlreadyReserved)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.cache.bumped)
	assert.Equal(t, []string{resultConflict}, f.metrics.results)
}

func TestExecute_StoreFailureCarriesMessage(t *testing.T) {
	f := newFixture()
	storeErr := &reservationRepo.StoreError{
		Message: `insert or update on table "reservations" violates foreign key constraint`,
		Err:     errors.New("pq: foreign key violation"),
	}
	f.repo.err = fmt.Errorf("%w: Create - execute insert: %w", reservationRepo.ErrExecQuery, storeErr)

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, storeErr.Message, FailureMessage(err))
	assert.Equal(t, []string{resultError}, f.metrics.results)
}

func TestExecute_StoreFailureWithoutMessage(t *testing.T) {
	f := newFixture()
	f.repo.err = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, MsgUnknownFailure, FailureMessage(err))
}
