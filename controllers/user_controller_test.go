package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rightupnext/South-mirror-backend/models"
)

func TestGetUserHidesPassword(t *testing.T) {
	r, db, _ := newTestServer(t)
	user := createUser(t, db, "Alice", "alice@example.com", "user")

	w := doJSON(t, r, "GET", "/api/user/"+itoa(user.ID), nil, authCookie(t, user))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestUpdateUserOnlySelfOrAdmin(t *testing.T) {
	r, db, _ := newTestServer(t)
	alice := createUser(t, db, "Alice", "alice@example.com", "user")
	bob := createUser(t, db, "Bob", "bob@example.com", "user")

	data := map[string]string{"name": "Mallory", "email": "alice@example.com", "bio": ""}
	w := doMultipart(t, r, "PUT", "/api/user/"+itoa(alice.ID), data, authCookie(t, bob))
	assert.Equal(t, http.StatusForbidden, w.Code)

	data = map[string]string{"name": "Alice B", "email": "alice@example.com", "bio": "writer"}
	w = doMultipart(t, r, "PUT", "/api/user/"+itoa(alice.ID), data, authCookie(t, alice))
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	assert.NoError(t, db.First(&reloaded, alice.ID).Error)
	assert.Equal(t, "Alice B", reloaded.Name)
	assert.Equal(t, "writer", reloaded.Bio)
}

func TestGetAllUsersAdminOnly(t *testing.T) {
	r, db, _ := newTestServer(t)
	user := createUser(t, db, "User", "user@example.com", "user")
	admin := createUser(t, db, "Admin", "admin@example.com", "admin")

	w := doJSON(t, r, "GET", "/api/user", nil, authCookie(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "GET", "/api/user", nil, authCookie(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users []models.User `json:"users"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
}

func TestDeleteUserAdminOnly(t *testing.T) {
	r, db, _ := newTestServer(t)
	user := createUser(t, db, "User", "user@example.com", "user")
	admin := createUser(t, db, "Admin", "admin@example.com", "admin")

	w := doJSON(t, r, "DELETE", "/api/user/"+itoa(user.ID), nil, authCookie(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "DELETE", "/api/user/"+itoa(user.ID), nil, authCookie(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
