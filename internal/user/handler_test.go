package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/concierge-pm/api/internal/auth"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/api/register", h.Register).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.Handle("/api/user", auth.Middleware(http.HandlerFunc(h.Me))).Methods("GET")
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"username": "jsmith",
		"email":    "jsmith@example.com",
		"password": "hunter22",
		"role":     "property_manager",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	require.NotNil(t, reg.User)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "property_manager", reg.User.Role)

	// the bcrypt hash never leaks through the JSON layer
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	userJSON := raw["user"].(map[string]any)
	_, exposed := userJSON["password"]
	assert.False(t, exposed)

	rec = doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"username": "jsmith",
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = doJSON(t, router, http.MethodGet, "/api/user", nil, login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var me User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "jsmith", me.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"username": "jsmith",
		"email":    "jsmith@example.com",
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"username": "jsmith",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"username": "nobody",
		"password": "hunter22",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"username": "jsmith",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"username": "jsmith",
		"email":    "jsmith@example.com",
		"password": "hunter22",
		"role":     "superuser",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
