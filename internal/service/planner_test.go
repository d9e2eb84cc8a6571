package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/service"
)

// fakeChatServer mimics the chat-completions API with a canned reply.
func fakeChatServer(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Messages)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func plannerConfig(apiURL string) *config.Config {
	return &config.Config{
		AIAPIKey:         "test-api-key",
		AIAPIURL:         apiURL,
		AITimeoutSeconds: 5,
	}
}

func TestGenerateMealPlan(t *testing.T) {
	srv := fakeChatServer(t, "Day 1: oatmeal...", http.StatusOK)
	defer srv.Close()

	planner := service.NewPlannerService(plannerConfig(srv.URL), nil)

	plan, err := planner.GenerateMealPlan(context.Background(), uuid.New(), "lose 5kg")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: oatmeal...", plan)
}

func TestGenerateMealPlanUpstreamError(t *testing.T) {
	srv := fakeChatServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	planner := service.NewPlannerService(plannerConfig(srv.URL), nil)

	_, err := planner.GenerateMealPlan(context.Background(), uuid.New(), "lose 5kg")
	assert.Error(t, err)
}

func TestExpandArticle(t *testing.T) {
	srv := fakeChatServer(t, "Hydration matters because...", http.StatusOK)
	defer srv.Close()

	planner := service.NewPlannerService(plannerConfig(srv.URL), nil)

	text, err := planner.ExpandArticle(context.Background(), "Hydration Basics")
	require.NoError(t, err)
	assert.Equal(t, "Hydration matters because...", text)
}

func TestCachedMealPlanWithoutRedis(t *testing.T) {
	planner := service.NewPlannerService(plannerConfig("http://unused"), nil)

	plan, err := planner.CachedMealPlan(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, plan)
}
