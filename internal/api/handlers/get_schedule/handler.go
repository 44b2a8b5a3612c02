package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
)

const (
	msgInvalidDate = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date format: date=%q, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: date=%q, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule - Schedule retrieved successfully: date=%s, categories=%d",
		response.Date, len(response.Schedules))
	handlers.RespondJSON(w, http.StatusOK, response)
}
