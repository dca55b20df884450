package servicerequest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/concierge-pm/api/internal/serviceorder"
	"github.com/concierge-pm/api/internal/workorder"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gorm.DB, *mux.Router) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&ServiceRequest{},
		&ServiceRequestServiceOrder{},
		&ServiceRequestWorkOrder{},
		&serviceorder.ServiceOrder{},
		&workorder.WorkOrder{},
	))

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/api/service-requests", h.List).Methods("GET")
	r.HandleFunc("/api/service-requests", h.Create).Methods("POST")
	r.HandleFunc("/api/service-requests/{id}", h.Get).Methods("GET")
	r.HandleFunc("/api/service-requests/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/api/service-requests/{id}/service-orders", h.ServiceOrders).Methods("GET")
	r.HandleFunc("/api/service-requests/{id}/service-orders/{orderId}", h.LinkServiceOrder).Methods("POST")
	r.HandleFunc("/api/service-requests/{id}/work-orders", h.WorkOrders).Methods("GET")
	r.HandleFunc("/api/service-requests/{id}/work-orders/{orderId}", h.LinkWorkOrder).Methods("POST")
	return db, r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createRequest(t *testing.T, router *mux.Router) ServiceRequest {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/service-requests", map[string]string{
		"residentId":  "res-1",
		"spaceId":     "spc-1",
		"title":       "Leaking faucet",
		"description": "Kitchen sink drips constantly",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var sr ServiceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sr))
	return sr
}

func TestCreateDefaults(t *testing.T) {
	_, router := newTestRouter(t)
	sr := createRequest(t, router)

	assert.Equal(t, StatusSubmitted, sr.Status)
	assert.Equal(t, PriorityMedium, sr.Priority)
	assert.Nil(t, sr.AcknowledgedAt)
}

func TestStatusUpdateStampsTimestamps(t *testing.T) {
	_, router := newTestRouter(t)
	sr := createRequest(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/service-requests/"+sr.ID, map[string]string{
		"status": "acknowledged",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated ServiceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, StatusAcknowledged, updated.Status)
	require.NotNil(t, updated.AcknowledgedAt)
	assert.Nil(t, updated.TriagedAt)

	rec = doJSON(t, router, http.MethodPut, "/api/service-requests/"+sr.ID, map[string]string{
		"status": "resolved",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.NotNil(t, updated.ResolvedAt)
}

func TestAnyTransitionAllowed(t *testing.T) {
	_, router := newTestRouter(t)
	sr := createRequest(t, router)

	// transition legality is not enforced: submitted -> closed is accepted
	rec := doJSON(t, router, http.MethodPut, "/api/service-requests/"+sr.ID, map[string]string{
		"status": "closed",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/service-requests/"+sr.ID, map[string]string{
		"status": "submitted",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvalidStatusRejected(t *testing.T) {
	_, router := newTestRouter(t)
	sr := createRequest(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/service-requests/"+sr.ID, map[string]string{
		"status": "exploded",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusFilter(t *testing.T) {
	_, router := newTestRouter(t)
	a := createRequest(t, router)
	createRequest(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/service-requests/"+a.ID, map[string]string{
		"status": "triaged",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/service-requests?status=triaged", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []ServiceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, a.ID, filtered[0].ID)
}

func TestServiceOrderLinks(t *testing.T) {
	db, router := newTestRouter(t)
	sr := createRequest(t, router)

	order := serviceorder.ServiceOrder{Title: "Fix faucet", Status: serviceorder.StatusPending}
	require.NoError(t, db.Create(&order).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/service-requests/"+sr.ID+"/service-orders/"+order.ID, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/service-requests/"+sr.ID+"/service-orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []serviceorder.ServiceOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// reverse direction
	repo := NewRepository(db)
	requests, err := repo.RequestsForServiceOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, sr.ID, requests[0].ID)
}

func TestWorkOrderLinks(t *testing.T) {
	db, router := newTestRouter(t)
	sr := createRequest(t, router)

	order := workorder.WorkOrder{Title: "Replace pipe", ContractorName: "Acme Plumbing", Status: workorder.StatusPending}
	require.NoError(t, db.Create(&order).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/service-requests/"+sr.ID+"/work-orders/"+order.ID, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/service-requests/"+sr.ID+"/work-orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []workorder.WorkOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestLinkMissingRequest(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/service-requests/nope/service-orders/also-nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
