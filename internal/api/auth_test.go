package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username":         "alice",
		"password":         "hunter22",
		"confirm_password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login map[string]string
	decodeBody(t, w, &login)
	require.NotEmpty(t, login["token"])

	w = app.request(t, http.MethodPost, "/api/v1/auth/logout", login["token"], nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username":         "alice",
		"password":         "hunter22",
		"confirm_password": "hunter23",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	app := newTestApp(t)
	app.registerUser(t, "alice")

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username":         "alice",
		"password":         "hunter22",
		"confirm_password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.registerUser(t, "alice")

	w := app.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
