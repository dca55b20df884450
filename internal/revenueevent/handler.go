package revenueevent

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves read access to revenue events.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/revenue-events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch revenue events", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// ListByLease handles GET /api/revenue-events/{leaseId}.
func (h *Handler) ListByLease(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.ListByLease(mux.Vars(r)["leaseId"])
	if err != nil {
		http.Error(w, "failed to fetch revenue events", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}
