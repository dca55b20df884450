package funder

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createFunderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handler serves the funder CRUD routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/funders.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	funders, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch funders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(funders)
}

// Get handles GET /api/funders/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "funder not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// Create handles POST /api/funders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFunderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid funder data", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "invalid funder data", http.StatusBadRequest)
		return
	}

	f := Funder{Name: req.Name, Description: req.Description}
	if err := h.Repo.Create(&f); err != nil {
		http.Error(w, "failed to create funder", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// Update handles PUT /api/funders/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	f, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "funder not found", http.StatusNotFound)
		return
	}

	var req createFunderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid funder data", http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		f.Name = req.Name
	}
	if req.Description != "" {
		f.Description = req.Description
	}

	if err := h.Repo.Update(f); err != nil {
		http.Error(w, "failed to update funder", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// Delete handles DELETE /api/funders/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(mux.Vars(r)["id"]); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "funder not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete funder", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
