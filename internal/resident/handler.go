package resident

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createResidentRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Type   string  `json:"type"`
	Role   string  `json:"role"`
	UserID *string `json:"userId"`
}

// Handler serves the resident CRUD routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/residents.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	residents, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch residents", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(residents)
}

// Get handles GET /api/residents/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "resident not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Create handles POST /api/residents.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid resident data", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || !IsValidType(req.Type) || !IsValidRole(req.Role) {
		http.Error(w, "invalid resident data", http.StatusBadRequest)
		return
	}

	res := Resident{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Type:   req.Type,
		Role:   req.Role,
		UserID: req.UserID,
	}
	if err := h.Repo.Create(&res); err != nil {
		http.Error(w, "failed to create resident", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

// Update handles PUT /api/residents/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	res, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "resident not found", http.StatusNotFound)
		return
	}

	var req createResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid resident data", http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		res.Name = req.Name
	}
	if req.Email != "" {
		res.Email = req.Email
	}
	if req.Phone != "" {
		res.Phone = req.Phone
	}
	if req.Type != "" {
		if !IsValidType(req.Type) {
			http.Error(w, "invalid resident data", http.StatusBadRequest)
			return
		}
		res.Type = req.Type
	}
	if req.Role != "" {
		if !IsValidRole(req.Role) {
			http.Error(w, "invalid resident data", http.StatusBadRequest)
			return
		}
		res.Role = req.Role
	}
	if req.UserID != nil {
		res.UserID = req.UserID
	}

	if err := h.Repo.Update(res); err != nil {
		http.Error(w, "failed to update resident", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Delete handles DELETE /api/residents/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(mux.Vars(r)["id"]); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "resident not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete resident", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
