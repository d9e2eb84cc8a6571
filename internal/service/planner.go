package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/healthtrack/backend/config"
)

// planCacheTTL controls how long a generated plan stays retrievable.
const planCacheTTL = 24 * time.Hour

// PlannerService generates meal plans and article expansions through a hosted
// chat-completions API. Every request runs under the caller's context with a
// bounded client timeout, so a slow upstream cannot stall an interaction
// indefinitely; failures come back as errors, never panics.
type PlannerService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// NewPlannerService builds the planner from validated configuration. The API
// key's presence is enforced at startup by config validation.
func NewPlannerService(cfg *config.Config, redisClient *redis.Client) *PlannerService {
	return &PlannerService{
		apiKey: cfg.AIAPIKey,
		apiURL: cfg.AIAPIURL,
		client: &http.Client{Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second},
		redis:  redisClient,
	}
}

// message is a single chat turn.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// GenerateMealPlan asks the model for a structured plan for the user's stated
// goal and caches the result so it can be re-fetched without another call.
func (s *PlannerService) GenerateMealPlan(ctx context.Context, userID uuid.UUID, goal string) (string, error) {
	prompt := fmt.Sprintf(`Create a detailed meal plan for: %s
Include:
1. 7-day meal schedule
2. Calorie targets and macros
3. Shopping list
4. Prep tips
Format with clear sections.`, goal)

	plan, err := s.chat(ctx, []message{
		{Role: "system", Content: "You are a professional nutritionist creating practical meal plans."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", err
	}

	if s.redis != nil {
		key := planCacheKey(userID)
		if err := s.redis.Set(ctx, key, plan, planCacheTTL).Err(); err != nil {
			// Cache miss on next read is the only consequence.
			return plan, nil
		}
	}

	return plan, nil
}

// CachedMealPlan returns the user's most recent generated plan, or "" when
// none is cached.
func (s *PlannerService) CachedMealPlan(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.redis == nil {
		return "", nil
	}
	plan, err := s.redis.Get(ctx, planCacheKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached plan: %w", err)
	}
	return plan, nil
}

// ExpandArticle generates the full text for an education article title.
func (s *PlannerService) ExpandArticle(ctx context.Context, title string) (string, error) {
	return s.chat(ctx, []message{
		{Role: "user", Content: "Provide detailed information about: " + title},
	})
}

func planCacheKey(userID uuid.UUID) string {
	return "planner:mealplan:" + userID.String()
}

// chat sends one chat-completions request and returns the first choice's text.
func (s *PlannerService) chat(ctx context.Context, messages []message) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       "deepseek-chat",
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
