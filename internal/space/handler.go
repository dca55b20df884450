package space

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createSpaceRequest struct {
	Identifier  string `json:"identifier"`
	SpaceTypeID string `json:"spaceTypeId"`
	SiteID      string `json:"siteId"`
}

// Handler serves the space CRUD routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/spaces.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch spaces", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spaces)
}

// ListBySite handles GET /api/sites/{id}/spaces.
func (h *Handler) ListBySite(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.Repo.ListBySite(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch spaces", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spaces)
}

// Get handles GET /api/spaces/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "space not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Create handles POST /api/spaces.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid space data", http.StatusBadRequest)
		return
	}
	if req.Identifier == "" || req.SpaceTypeID == "" || req.SiteID == "" {
		http.Error(w, "invalid space data", http.StatusBadRequest)
		return
	}

	s := Space{Identifier: req.Identifier, SpaceTypeID: req.SpaceTypeID, SiteID: req.SiteID}
	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "failed to create space", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// Update handles PUT /api/spaces/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "space not found", http.StatusNotFound)
		return
	}

	var req createSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid space data", http.StatusBadRequest)
		return
	}
	if req.Identifier != "" {
		s.Identifier = req.Identifier
	}
	if req.SpaceTypeID != "" {
		s.SpaceTypeID = req.SpaceTypeID
	}
	if req.SiteID != "" {
		s.SiteID = req.SiteID
	}

	if err := h.Repo.Update(s); err != nil {
		http.Error(w, "failed to update space", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Delete handles DELETE /api/spaces/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(mux.Vars(r)["id"]); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "space not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete space", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
