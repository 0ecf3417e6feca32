package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/testhelpers"
)

func TestGetMeRequiresAuth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMeReturnsProfileWithoutPasswordHash(t *testing.T) {
	router, db := setupTestRouter(t)
	user, token := testhelpers.CreateUserAndToken(t, db, "me@example.com")

	w := performRequest(router, http.MethodGet, "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, user.Email, body["email"])
	assert.Equal(t, user.Name, body["name"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUpdateMeChangesNameAndPassword(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := testhelpers.CreateUserAndToken(t, db, "update-me@example.com")

	w := performRequest(router, http.MethodPut, "/api/v1/users/me", map[string]interface{}{
		"name":     "Updated Name",
		"password": "newpassword",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated Name", decodeJSON(t, w)["name"])

	// The new password works for login, the old one no longer does.
	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    "update-me@example.com",
		"password": "newpassword",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    "update-me@example.com",
		"password": "testpass123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateMePartialKeepsUntouchedFields(t *testing.T) {
	router, db := setupTestRouter(t)
	user, token := testhelpers.CreateUserAndToken(t, db, "partial@example.com")

	w := performRequest(router, http.MethodPut, "/api/v1/users/me", map[string]interface{}{
		"name": "Only The Name",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Password untouched, login with the original still works.
	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    user.Email,
		"password": "testpass123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
