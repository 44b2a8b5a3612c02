package lookup_reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	"github.com/m04kA/SMC-VisitService/internal/domain"
	lookupReservations "github.com/m04kA/SMC-VisitService/internal/usecase/lookup_reservations"
	"github.com/m04kA/SMC-VisitService/internal/validation"
	"github.com/m04kA/SMC-VisitService/pkg/logger"
	"github.com/m04kA/SMC-VisitService/pkg/types"
)

type fakeUseCase struct {
	req  *lookupReservations.Request
	resp *lookupReservations.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *lookupReservations.Request) (*lookupReservations.Response, error) {
	f.req = req
	return f.resp, f.err
}

const validBody = `{"guestPhone":"01012345678","guestPassword":"1234"}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/lookup", strings.NewReader(body)))
	return w
}

func TestHandle_Found(t *testing.T) {
	uc := &fakeUseCase{resp: &lookupReservations.Response{Reservations: []lookupReservations.Reservation{
		{
			ID:         3,
			Category:   domain.VisitCategory{ID: 1, Name: "대심방"},
			VisitDate:  types.NewDate(2026, time.October, 21),
			VisitTime:  9,
			GuestName:  "홍길동",
			GuestPhone: "01012345678",
			CreatedAt:  time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
		},
	}}}
	h := NewHandler(uc, logger.NewNop())

	w := doRequest(h, validBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "01012345678", uc.req.GuestPhone)
	assert.Equal(t, "1234", uc.req.GuestPassword)
	assert.JSONEq(t, `[{"id":3,"category":{"id":1,"name":"대심방"},"visitDate":"2026-10-21","visitTime":9,`+
		`"guestName":"홍길동","guestPhone":"01012345678","createdAt":"2026-10-15T09:00:00Z"}]`, w.Body.String())
}

func TestHandle_EmptyList(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: &lookupReservations.Response{}}, logger.NewNop())

	w := doRequest(h, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_ValidationFailed(t *testing.T) {
	fieldErr := validation.LookupForm("010", "1234")
	h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: %w", lookupReservations.ErrInvalidInput, fieldErr)}, logger.NewNop())

	w := doRequest(h, `{"guestPhone":"010","guestPassword":"1234"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, validation.MsgInvalidPhoneLookup, body.Fields[validation.FieldGuestPhone])
}

func TestHandle_StoreErrorIsNotEmptyList(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: lookupReservations.ErrInternal}, logger.NewNop())

	w := doRequest(h, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"예약 조회 중 오류가 발생했습니다."}`, w.Body.String())
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	w := doRequest(h, "not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.req)
}
