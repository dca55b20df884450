package serviceorder

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&ServiceOrder{}))

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/api/service-orders", h.List).Methods("GET")
	r.HandleFunc("/api/service-orders", h.Create).Methods("POST")
	r.HandleFunc("/api/service-orders/{id}", h.Get).Methods("GET")
	r.HandleFunc("/api/service-orders/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/api/users/{id}/service-orders", h.ListByAssignedStaff).Methods("GET")
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

func TestListByAssignedStaff(t *testing.T) {
	db, router := newTestRouter(t)

	staffA := "staff-a"
	staffB := "staff-b"
	orders := []ServiceOrder{
		{Title: "Inspect boiler", AssignedStaffID: &staffA, Status: StatusAssigned},
		{Title: "Replace filter", AssignedStaffID: &staffA, Status: StatusPending},
		{Title: "Patch drywall", AssignedStaffID: &staffB, Status: StatusPending},
		{Title: "Unassigned sweep", Status: StatusPending},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/users/staff-a/service-orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []ServiceOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	for _, o := range got {
		require.NotNil(t, o.AssignedStaffID)
		assert.Equal(t, staffA, *o.AssignedStaffID)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/users/nobody/service-orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got)
}

func TestCompletedStampsTimestamp(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/service-orders", map[string]string{
		"title": "Fix gate",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created ServiceOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, StatusPending, created.Status)
	assert.Nil(t, created.CompletedAt)

	rec = doJSON(t, router, http.MethodPut, "/api/service-orders/"+created.ID, map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated ServiceOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
}
