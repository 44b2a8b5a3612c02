package lookup_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
	"github.com/m04kA/SMC-VisitService/internal/validation"
	lookupReservations "github.com/m04kA/SMC-VisitService/internal/usecase/lookup_reservations"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidInput       = "입력값을 확인해주세요."
	msgLookupFailed       = "예약 조회 중 오류가 발생했습니다."
)

type Handler struct {
	useCase LookupReservationsUseCase
	logger  Logger
}

func NewHandler(useCase LookupReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/lookup
// PIN передается в теле, чтобы не попадать в URL и access-логи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/lookup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, lookupReservations.ErrInvalidInput):
			fields, _ := validation.FieldErrors(err)
			h.logger.Warn("POST /reservations/lookup - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, fields)

		default:
			h.logger.Error("POST /reservations/lookup - Failed to lookup reservations: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLookupFailed)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations/lookup - Reservations retrieved successfully: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
