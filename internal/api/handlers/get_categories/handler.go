package get_categories

import (
	"net/http"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
)

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories - Categories retrieved successfully: count=%d", len(categories))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(categories))
}
