package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rightupnext/South-mirror-backend/models"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	r, db, _ := newTestServer(t)

	body := map[string]string{"email": "fan@example.com"}
	w := doJSON(t, r, "POST", "/api/subscribe", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Subscribed successfully")

	w = doJSON(t, r, "POST", "/api/subscribe", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Already subscribed")

	var count int64
	assert.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubscribeNormalizesCase(t *testing.T) {
	r, db, _ := newTestServer(t)

	w := doJSON(t, r, "POST", "/api/subscribe", map[string]string{"email": "Fan@Example.com"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/subscribe", map[string]string{"email": "fan@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, "POST", "/api/subscribe", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
