package api_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMealsDownload(t *testing.T) {
	app := newTestApp(t)
	_, token := app.registerUser(t, "alice")

	w := app.request(t, http.MethodPost, "/api/v1/logs/meals", token, map[string]interface{}{
		"date":      testDate(),
		"food_name": "oatmeal",
		"calories":  300,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/export/meals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "oatmeal", records[1][4])
}

func TestExportLinkWithoutStorage(t *testing.T) {
	app := newTestApp(t)
	_, token := app.registerUser(t, "alice")

	w := app.request(t, http.MethodGet, "/api/v1/export/meals/link", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCachedMealPlanEmpty(t *testing.T) {
	app := newTestApp(t)
	_, token := app.registerUser(t, "alice")

	// No plan generated and no cache backend wired.
	w := app.request(t, http.MethodGet, "/api/v1/planner/mealplan", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	// Quota headers only appear when a limiter is configured.
	assert.Empty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestExpandUnknownArticle(t *testing.T) {
	app := newTestApp(t)
	_, token := app.registerUser(t, "alice")

	w := app.request(t, http.MethodPost, "/api/v1/planner/articles/expand", token, map[string]string{
		"title": "Nonexistent Article",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
