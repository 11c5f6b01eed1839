package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveaevi/skincare-api/internal/models"
)

func TestContact(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ana",
		"email":   "ana@example.com",
		"message": "I love the serum",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := env.decode(rec)
	assert.Equal(t, true, resp["success"])
	assert.NotNil(t, resp["id"])

	rec = env.do(http.MethodPost, "/api/contact", map[string]string{"name": "Ana"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email, and message are required", env.decode(rec)["error"])
}

func TestContacts_PaginatedList(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		rec := env.do(http.MethodPost, "/api/contact", map[string]string{
			"name":    "Ana",
			"email":   "ana@example.com",
			"message": "Hello",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(http.MethodGet, "/api/contacts?page=1&per_page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(rec)
	assert.Equal(t, float64(3), resp["total"])
	assert.Equal(t, float64(2), resp["pages"])
	assert.Len(t, resp["contacts"], 2)
}

func TestNewsletter_SubscribeTwice(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/newsletter", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, env.decode(rec)["success"])

	rec = env.do(http.MethodPost, "/api/newsletter", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already subscribed", env.decode(rec)["error"])
}

func TestNewsletter_Reactivate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/newsletter", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, env.DB.Model(&models.Newsletter{}).
		Where("email = ?", "a@b.com").
		Update("is_active", false).Error)

	rec = env.do(http.MethodPost, "/api/newsletter", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Newsletter subscription reactivated", env.decode(rec)["message"])
}

func TestNewsletter_MissingEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/newsletter", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", env.decode(rec)["error"])
}

func TestAnalyticsTrackAndStats(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/analytics/track", map[string]string{
		"page_url": "/products",
		"referrer": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, env.decode(rec)["success"])

	rec = env.do(http.MethodGet, "/api/analytics/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(rec)
	assert.Equal(t, float64(1), resp["total_visits"])
	assert.Equal(t, float64(1), resp["today_visits"])
	assert.Equal(t, float64(0), resp["total_contacts"])
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(rec)
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}
