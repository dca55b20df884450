package site

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
	require.NoError(t, db.AutoMigrate(&Site{}))

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/api/sites", h.List).Methods("GET")
	r.HandleFunc("/api/sites", h.Create).Methods("POST")
	r.HandleFunc("/api/sites/{id}", h.Get).Methods("GET")
	r.HandleFunc("/api/sites/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/api/sites/{id}", h.Delete).Methods("DELETE")
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

func TestSiteLifecycle(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/sites", map[string]string{
		"name":                 "Riverside Commons",
		"address":              "100 Main St",
		"propertyDateAcquired": "2019-06-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.PropertyDateAcquired)

	rec = doJSON(t, router, http.MethodGet, "/api/sites/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/sites/"+created.ID, map[string]string{
		"address": "200 Main St",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Riverside Commons", updated.Name)
	assert.Equal(t, "200 Main St", updated.Address)

	rec = doJSON(t, router, http.MethodDelete, "/api/sites/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/sites/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSiteValidation(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/sites", map[string]string{"name": "No Address"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/sites", map[string]string{
		"name":                 "Bad Date",
		"address":              "1 Elm St",
		"propertyDateAcquired": "yesterday",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSiteNotFound(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/sites/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/sites/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
