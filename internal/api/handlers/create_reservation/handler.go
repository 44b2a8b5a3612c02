package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	"github.com/m04kA/SMC-VisitService/internal/validation"
	createReservation "github.com/m04kA/SMC-VisitService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgSelectionRequired  = "예약할 시간을 먼저 선택해주세요."
	msgInvalidInput       = "입력값을 확인해주세요."

	// redirectLanding куда вернуть пользователя без выбранного слота
	redirectLanding = "/"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSelectionRequired):
			h.logger.Warn("POST /reservations - Selection missing: category_id=%d, date=%q, time=%d",
				req.CategoryID, req.VisitDate, req.VisitTime)
			handlers.RespondRedirect(w, msgSelectionRequired, redirectLanding)

		case errors.Is(err, createReservation.ErrInvalidInput):
			fields, _ := validation.FieldErrors(err)
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, fields)

		case errors.Is(err, createReservation.ErrSlotAlreadyReserved):
			h.logger.Warn("POST /reservations - Slot already reserved: date=%s, time=%d", req.VisitDate, req.VisitTime)
			handlers.RespondError(w, http.StatusConflict, createReservation.MsgSlotAlreadyReserved)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%d, error=%v",
				req.VisitDate, req.VisitTime, err)
			handlers.RespondError(w, http.StatusInternalServerError, createReservation.FailureMessage(err))
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, date=%s, time=%d",
		result.ID, response.VisitDate, result.VisitTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
