package leasefunder

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves read access to lease funding rows.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// ListByLease handles GET /api/lease-funders/{leaseId}.
func (h *Handler) ListByLease(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.ListByLease(mux.Vars(r)["leaseId"])
	if err != nil {
		http.Error(w, "failed to fetch lease funders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}
