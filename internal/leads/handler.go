package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radianhq/outreach/pkg/logging"
)

const maxUploadBytes = 10 << 20

// Handler handles HTTP requests for the lead table.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a new leads handler.
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Count int `json:"count"`
}

// Upload handles POST /leads/upload: a multipart form with a "file" field
// containing the lead CSV. The parsed table replaces any previous upload.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	table, err := ParseCSV(file)
	if err != nil {
		if errors.Is(err, ErrEmptyFile) {
			http.Error(w, "lead file contains no rows", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to parse lead file", "error", err)
		http.Error(w, "invalid lead file", http.StatusBadRequest)
		return
	}

	h.store.Replace(table)
	h.logger.Info("lead table loaded", "rows", table.Len())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UploadResponse{Count: table.Len()})
}

// ListResponse describes the loaded table.
type ListResponse struct {
	Count   int    `json:"count"`
	Preview []Lead `json:"preview"`
}

// List handles GET /leads: row count plus a short preview so the operator
// can sanity-check the upload before sending.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	table, err := h.store.Table()
	if err != nil {
		http.Error(w, "no lead table loaded", http.StatusNotFound)
		return
	}

	preview := table.Rows()
	if len(preview) > 5 {
		preview = preview[:5]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{
		Count:   table.Len(),
		Preview: preview,
	})
}
