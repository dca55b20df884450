package site

import (
	"encoding/json"
	"net/http"

	"github.com/concierge-pm/api/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createSiteRequest struct {
	Name                 string `json:"name"`
	Address              string `json:"address"`
	PropertyDateAcquired string `json:"propertyDateAcquired"`
}

// Handler serves the site CRUD routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/sites.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch sites", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sites)
}

// Get handles GET /api/sites/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "site not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Create handles POST /api/sites.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid site data", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Address == "" {
		http.Error(w, "invalid site data", http.StatusBadRequest)
		return
	}

	s := Site{Name: req.Name, Address: req.Address}
	if req.PropertyDateAcquired != "" {
		t, err := utils.ParseDate(req.PropertyDateAcquired)
		if err != nil {
			http.Error(w, "invalid site data", http.StatusBadRequest)
			return
		}
		s.PropertyDateAcquired = &t
	}

	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "failed to create site", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// Update handles PUT /api/sites/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "site not found", http.StatusNotFound)
		return
	}

	var req createSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid site data", http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		s.Name = req.Name
	}
	if req.Address != "" {
		s.Address = req.Address
	}
	if req.PropertyDateAcquired != "" {
		t, err := utils.ParseDate(req.PropertyDateAcquired)
		if err != nil {
			http.Error(w, "invalid site data", http.StatusBadRequest)
			return
		}
		s.PropertyDateAcquired = &t
	}

	if err := h.Repo.Update(s); err != nil {
		http.Error(w, "failed to update site", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Delete handles DELETE /api/sites/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(mux.Vars(r)["id"]); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "site not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete site", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
