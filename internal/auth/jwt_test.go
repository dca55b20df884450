package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("user-1", "admin")
	require.NoError(t, err)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseAndValidate("not-a-token")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	var gotUserID, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(CtxUserID).(string)
		gotRole, _ = r.Context().Value(CtxRole).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(next)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateToken("user-2", "property_manager")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-2", gotUserID)
		assert.Equal(t, "property_manager", gotRole)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole("admin", "property_manager")(next)

	t.Run("allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), CtxRole, "admin"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), CtxRole, "resident"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
