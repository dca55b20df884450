package spacetype

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createSpaceTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handler serves the space-type catalog routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/space-types.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch space types", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(types)
}

// Get handles GET /api/space-types/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "space type not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Create handles POST /api/space-types.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSpaceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid space type data", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "invalid space type data", http.StatusBadRequest)
		return
	}

	t := SpaceType{Name: req.Name, Description: req.Description}
	if err := h.Repo.Create(&t); err != nil {
		http.Error(w, "failed to create space type", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}
