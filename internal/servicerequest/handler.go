package servicerequest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createServiceRequestRequest struct {
	ResidentID  string `json:"residentId"`
	SpaceID     string `json:"spaceId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// Handler serves the service-request routes and the order link endpoints.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// List handles GET /api/service-requests with an optional ?status= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		requests []ServiceRequest
		err      error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		requests, err = h.Repo.ListByStatus(status)
	} else {
		requests, err = h.Repo.ListAll()
	}
	if err != nil {
		http.Error(w, "failed to fetch service requests", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// ListByResident handles GET /api/residents/{id}/service-requests.
func (h *Handler) ListByResident(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Repo.ListByResident(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch service requests", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// ListBySpace handles GET /api/spaces/{id}/service-requests.
func (h *Handler) ListBySpace(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Repo.ListBySpace(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch service requests", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// Get handles GET /api/service-requests/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sr, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "service request not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sr)
}

// Create handles POST /api/service-requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid service request data", http.StatusBadRequest)
		return
	}
	if req.ResidentID == "" || req.SpaceID == "" || req.Title == "" {
		http.Error(w, "invalid service request data", http.StatusBadRequest)
		return
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if !IsValidPriority(req.Priority) {
		http.Error(w, "invalid service request data", http.StatusBadRequest)
		return
	}

	sr := ServiceRequest{
		ResidentID:  req.ResidentID,
		SpaceID:     req.SpaceID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      StatusSubmitted,
	}
	if err := h.Repo.Create(&sr); err != nil {
		http.Error(w, "failed to create service request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sr)
}

// Update handles PUT /api/service-requests/{id}. Transition legality is not
// checked; an update carrying acknowledged/triaged/resolved stamps the
// matching timestamp when it is still unset.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sr, err := h.Repo.FindByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "service request not found", http.StatusNotFound)
		return
	}

	var req createServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid service request data", http.StatusBadRequest)
		return
	}
	if req.Title != "" {
		sr.Title = req.Title
	}
	if req.Description != "" {
		sr.Description = req.Description
	}
	if req.Priority != "" {
		if !IsValidPriority(req.Priority) {
			http.Error(w, "invalid service request data", http.StatusBadRequest)
			return
		}
		sr.Priority = req.Priority
	}
	if req.Status != "" {
		if !IsValidStatus(req.Status) {
			http.Error(w, "invalid service request data", http.StatusBadRequest)
			return
		}
		sr.Status = req.Status
		now := time.Now()
		switch req.Status {
		case StatusAcknowledged:
			if sr.AcknowledgedAt == nil {
				sr.AcknowledgedAt = &now
			}
		case StatusTriaged:
			if sr.TriagedAt == nil {
				sr.TriagedAt = &now
			}
		case StatusResolved:
			if sr.ResolvedAt == nil {
				sr.ResolvedAt = &now
			}
		}
	}

	if err := h.Repo.Update(sr); err != nil {
		http.Error(w, "failed to update service request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sr)
}

// Delete handles DELETE /api/service-requests/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(mux.Vars(r)["id"]); err != nil {
		http.Error(w, "service request not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkServiceOrder handles POST /api/service-requests/{id}/service-orders/{orderId}.
func (h *Handler) LinkServiceOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if _, err := h.Repo.FindByID(vars["id"]); err != nil {
		http.Error(w, "service request not found", http.StatusNotFound)
		return
	}
	link, err := h.Repo.LinkServiceOrder(vars["id"], vars["orderId"])
	if err != nil {
		http.Error(w, "failed to link service order", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(link)
}

// LinkWorkOrder handles POST /api/service-requests/{id}/work-orders/{orderId}.
func (h *Handler) LinkWorkOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if _, err := h.Repo.FindByID(vars["id"]); err != nil {
		http.Error(w, "service request not found", http.StatusNotFound)
		return
	}
	link, err := h.Repo.LinkWorkOrder(vars["id"], vars["orderId"])
	if err != nil {
		http.Error(w, "failed to link work order", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(link)
}

// ServiceOrders handles GET /api/service-requests/{id}/service-orders.
func (h *Handler) ServiceOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ServiceOrdersForRequest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch linked service orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// WorkOrders handles GET /api/service-requests/{id}/work-orders.
func (h *Handler) WorkOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.WorkOrdersForRequest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch linked work orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// RequestsForServiceOrder handles GET /api/service-orders/{id}/service-requests.
func (h *Handler) RequestsForServiceOrder(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Repo.RequestsForServiceOrder(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch linked service requests", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// RequestsForWorkOrder handles GET /api/work-orders/{id}/service-requests.
func (h *Handler) RequestsForWorkOrder(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Repo.RequestsForWorkOrder(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "failed to fetch linked service requests", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}
