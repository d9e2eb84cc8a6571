package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/api"
	"github.com/healthtrack/backend/internal/catalog"
	"github.com/healthtrack/backend/internal/router"
	"github.com/healthtrack/backend/internal/service"
	"github.com/healthtrack/backend/internal/testhelpers"
	"github.com/healthtrack/backend/internal/types"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testApp is a fully wired application over an in-memory database.
type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	cat, err := catalog.Load("does-not-exist.csv", "does-not-exist.csv")
	require.NoError(t, err)

	cfg := &config.Config{
		AIAPIKey:         "test-api-key",
		AIAPIURL:         "http://127.0.0.1:0",
		AITimeoutSeconds: 1,
	}

	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db)
	logService := service.NewLogService(db)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Metrics:   api.NewMetricsHandler(profileService),
		Logs:      api.NewLogHandler(logService, cat),
		Catalog:   api.NewCatalogHandler(cat),
		Planner:   api.NewPlannerHandler(service.NewPlannerService(cfg, nil), cat, nil),
		Favorites: api.NewFavoriteHandler(service.NewFavoriteService(db)),
		Goals:     api.NewGoalHandler(service.NewGoalService(db)),
		Export:    api.NewExportHandler(service.NewExportService(db, nil)),
	}

	return &testApp{
		engine: router.SetupRouter(handlers, authService),
		db:     db,
		auth:   authService,
	}
}

// registerUser creates an account directly and returns a valid session token.
func (a *testApp) registerUser(t *testing.T, username string) (uuid.UUID, string) {
	t.Helper()

	user, err := a.auth.Register(context.Background(), username, "hunter22")
	require.NoError(t, err)

	token, err := a.auth.GenerateToken(&types.TokenClaims{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	return user.ID, token
}

// request performs an HTTP request against the wired router. A non-empty
// token is sent as a bearer credential.
func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	require.Equal(t, "healthy", body["status"])
}
