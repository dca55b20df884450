package serviceorder

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/concierge-pm/api/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createServiceOrderRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	AssignedStaffID *string `json:"assignedStaffId"`
	Status          string  `json:"status"`
	ScheduledDate   string  `json:"scheduledDate"`
}

// Handler serves the service-order CRUD routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/service-orders with an optional ?status= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		orders []ServiceOrder
		err    error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		orders, err = h.Repo.ListByStatus(status)
	} else {
		orders, err = h.Repo.ListAll()
	}
	if err != nil {
		http.Error(w, "failed to fetch service orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// ListByAssignedStaff handles GET /api/users/{id}/service-orders.
func (h *Handler) ListByAssignedStaff(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListByAssignedStaff(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch service orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// Get handles GET /api/service-orders/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "service order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Create handles POST /api/service-orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid service order data", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "invalid service order data", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = StatusPending
	}
	if !IsValidStatus(req.Status) {
		http.Error(w, "invalid service order data", http.StatusBadRequest)
		return
	}

	o := ServiceOrder{
		Title:           req.Title,
		Description:     req.Description,
		AssignedStaffID: req.AssignedStaffID,
		Status:          req.Status,
	}
	if req.ScheduledDate != "" {
		t, err := utils.ParseDate(req.ScheduledDate)
		if err != nil {
			http.Error(w, "invalid service order data", http.StatusBadRequest)
			return
		}
		o.ScheduledDate = &t
	}

	if err := h.Repo.Create(&o); err != nil {
		http.Error(w, "failed to create service order", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// Update handles PUT /api/service-orders/{id}. Setting status=completed
// stamps completedAt when it is still unset.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	o, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "service order not found", http.StatusNotFound)
		return
	}

	var req createServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid service order data", http.StatusBadRequest)
		return
	}
	if req.Title != "" {
		o.Title = req.Title
	}
	if req.Description != "" {
		o.Description = req.Description
	}
	if req.AssignedStaffID != nil {
		o.AssignedStaffID = req.AssignedStaffID
	}
	if req.ScheduledDate != "" {
		t, err := utils.ParseDate(req.ScheduledDate)
		if err != nil {
			http.Error(w, "invalid service order data", http.StatusBadRequest)
			return
		}
		o.ScheduledDate = &t
	}
	if req.Status != "" {
		if !IsValidStatus(req.Status) {
			http.Error(w, "invalid service order data", http.StatusBadRequest)
			return
		}
		o.Status = req.Status
		if req.Status == StatusCompleted && o.CompletedAt == nil {
			now := time.Now()
			o.CompletedAt = &now
		}
	}

	if err := h.Repo.Update(o); err != nil {
		http.Error(w, "failed to update service order", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Delete handles DELETE /api/service-orders/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(mux.Vars(r)["id"]); err != nil {
		http.Error(w, "service order not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
