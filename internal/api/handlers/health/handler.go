package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/SMC-VisitService/internal/api/handlers"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"

	pingTimeout = 2 * time.Second
)

// Response ответ health-check
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	checks map[string]Pinger
	logger Logger
}

// NewHandler создает health-check по набору именованных зависимостей
func NewHandler(checks map[string]Pinger, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := Response{Status: statusOK, Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name].PingContext(ctx); err != nil {
			h.logger.Error("GET /health - %s is unavailable: %v", name, err)
			response.Status = statusUnavailable
			response.Checks[name] = statusUnavailable
			continue
		}
		response.Checks[name] = statusOK
	}

	if response.Status != statusOK {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
