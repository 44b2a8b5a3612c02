package lookup_reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VisitService/internal/domain"
	"github.com/m04kA/SMC-VisitService/internal/validation"
	"github.com/m04kA/SMC-VisitService/pkg/logger"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

type fakeRepo struct {
	result []*domain.ReservationWithCategory
	err    error
	calls  int
}

func (r *fakeRepo) GetByGuest(ctx context.Context, phone, password string) ([]*domain.ReservationWithCategory, error) {
	r.calls++
	return r.result, r.err
}

type fakeMetrics struct {
	results []string
}

func (m *fakeMetrics) IncLookup(result string) {
	m.results = append(m.results, result)
}

func found(id int64, date types.Date, hour int) *domain.ReservationWithCategory {
	return &domain.ReservationWithCategory{
		Reservation: domain.Reservation{
			ID:            id,
			CategoryID:    1,
			VisitDate:     date,
			VisitTime:     hour,
			GuestName:     "홍길동",
			GuestPhone:    "01012345678",
			GuestPassword: "1234",
		},
		Category: domain.VisitCategory{ID: 1, Name: "대심방"},
	}
}

func TestExecute_ReturnsReservationsInStoreOrder(t *testing.T) {
	later := types.NewDate(2026, time.October, 21)
	earlier := types.NewDate(2026, time.October, 20)
	repo := &fakeRepo{result: []*domain.ReservationWithCategory{
		found(3, later, 9),
		found(1, earlier, 10),
		found(2, earlier, 15),
	}}
	metrics := &fakeMetrics{}
	uc := NewUseCase(repo, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{GuestPhone: "01012345678", GuestPassword: "1234"})

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{resp.Reservations[0].ID, resp.Reservations[1].ID, resp.Reservations[2].ID})
	assert.Equal(t, "대심방", resp.Reservations[0].Category.Name)
	assert.Equal(t, []string{resultFound}, metrics.results)
}

func TestExecute_EmptyIsNotAnError(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(&fakeRepo{}, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{GuestPhone: "01012345678", GuestPassword: "0000"})

	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
	assert.Empty(t, resp.Reservations)
	assert.Equal(t, []string{resultEmpty}, metrics.results)
}

func TestExecute_StoreErrorIsSurfaced(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(&fakeRepo{err: errors.New("connection refused")}, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{GuestPhone: "01012345678", GuestPassword: "1234"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{resultError}, metrics.results)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeMetrics{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{GuestPhone: "1234", GuestPassword: "12"})

	require.ErrorIs(t, err, ErrInvalidInput)
	fields, ok := validation.FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, validation.MsgInvalidPhoneLookup, fields[validation.FieldGuestPhone])
	assert.Equal(t, validation.MsgPasswordLengthLookup, fields[validation.FieldGuestPassword])
	assert.Zero(t, repo.calls)
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***5678", maskPhone("01012345678"))
	assert.Equal(t, "****", maskPhone("12"))
}
