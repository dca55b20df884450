package lease

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler serves lease CRUD and the funding workflow (funding.go).
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// List handles GET /api/leases.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	leases, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "failed to fetch leases", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leases)
}

// ListByResident handles GET /api/residents/{id}/leases.
func (h *Handler) ListByResident(w http.ResponseWriter, r *http.Request) {
	leases, err := h.Repo.ListByResident(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch leases", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leases)
}

// Get handles GET /api/leases/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "lease not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// Create handles POST /api/leases: a bare lease with no funding rows.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateLeaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid lease data", http.StatusBadRequest)
		return
	}
	l, err := dto.ToModel()
	if err != nil {
		http.Error(w, "invalid lease data", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(l); err != nil {
		http.Error(w, "failed to create lease", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

type updateLeaseRequest struct {
	RentalAmount *decimal.Decimal `json:"rentalAmount"`
	MarketValue  *decimal.Decimal `json:"marketValue"`
}

// Update handles PUT /api/leases/{id}. Only the monetary fields are mutable;
// updating a lease never touches its funding or revenue rows.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	l, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "lease not found", http.StatusNotFound)
		return
	}

	var req updateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid lease data", http.StatusBadRequest)
		return
	}
	if req.RentalAmount != nil {
		l.RentalAmount = *req.RentalAmount
	}
	if req.MarketValue != nil {
		l.MarketValue = *req.MarketValue
	}

	if err := h.Repo.Update(l); err != nil {
		http.Error(w, "failed to update lease", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}
