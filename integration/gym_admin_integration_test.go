package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGymTenantLifecycle(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginSuperAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/admin/gyms", adminToken, map[string]interface{}{
		"name":                 "Steel Works",
		"address":              "12 MG Road",
		"city":                 "Pune",
		"password": "pass123",
		"joinDate": "2024-01-15",
		"planDays": 365,
		"pricing": map[string]float64{
			"oneMonth":     1200,
			"twoMonths":    2200,
			"threeMonths":  3200,
			"sixMonths":    6000,
			"twelveMonths": 11000,
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID                 string  `json:"id"`
		Status             string  `json:"status"`
		TermsAndConditions string  `json:"termsAndConditions"`
		SubscriptionDue    float64 `json:"subscriptionDue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Regexp(t, `^GYM\d{4}$`, created.ID)
	assert.Equal(t, "ACTIVE", created.Status)
	assert.Equal(t, "Standard Gym Terms Applied.", created.TermsAndConditions)
	assert.Equal(t, float64(100), created.SubscriptionDue)

	list := doJSON(t, router, http.MethodGet, "/admin/gyms", adminToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var gyms []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &gyms))
	assert.Len(t, gyms, 2) // seeded demo gym + the new tenant

	toggle := doJSON(t, router, http.MethodPost, "/admin/gyms/"+created.ID+"/status", adminToken, nil)
	require.Equal(t, http.StatusOK, toggle.Code)
	assert.Contains(t, toggle.Body.String(), `"status":"PAUSED"`)

	// Paused tenants are locked out of manager login.
	blocked := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"role":     "MANAGER",
		"gymId":    created.ID,
		"password": "pass123",
	})
	require.Equal(t, http.StatusUnauthorized, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "currently suspended")

	del := doJSON(t, router, http.MethodDelete, "/admin/gyms/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, del.Code)

	gone := doJSON(t, router, http.MethodDelete, "/admin/gyms/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestPlatformStats(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginSuperAdmin(t, router)

	w := doJSON(t, router, http.MethodGet, "/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Total  int `json:"total"`
		Active int `json:"active"`
		Paused int `json:"paused"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 0, stats.Paused)
}

func TestManagerTermsRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	managerToken := loginManager(t, router)

	put := doJSON(t, router, http.MethodPut, "/manager/terms", managerToken, map[string]interface{}{
		"termsAndConditions": "No refunds after 7 days.",
	})
	require.Equal(t, http.StatusOK, put.Code)

	get := doJSON(t, router, http.MethodGet, "/manager/terms", managerToken, nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Contains(t, get.Body.String(), "No refunds after 7 days.")
}
