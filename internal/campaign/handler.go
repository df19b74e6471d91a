package campaign

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/pkg/logging"
)

// Handler exposes campaign runs over HTTP.
type Handler struct {
	runner *Runner
	logger *logging.Logger
}

// NewHandler creates a campaign handler.
func NewHandler(runner *Runner, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		runner: runner,
		logger: logger,
	}
}

// Run handles POST /campaigns/run. The body selects the row range and the
// action: {"start": 0, "end": 10, "follow_up": false}. The run executes
// synchronously and the final report is returned.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.runner.Run(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrNoTable):
			http.Error(w, "no lead table loaded", http.StatusConflict)
		case errors.Is(err, ErrInvalidRange):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case r.Context().Err() != nil:
			// Client went away mid-run; the partial report has nowhere to go.
			h.logger.Warn("campaign run canceled", "error", err)
		default:
			h.logger.Error("campaign run failed", "error", err)
			http.Error(w, "campaign run failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
