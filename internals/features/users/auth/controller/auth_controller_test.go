package controller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ptiadmin_backend/internals/features/users/auth/service"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := service.NewAuthService("supervisor", string(h), service.NewTokenService("secret", time.Hour))
	ctl := NewAuthController(auth, false, nil)

	app := fiber.New()
	app.Post("/login", ctl.Login)
	app.Post("/logout", ctl.Logout)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, resp.Header.Get("Set-Cookie")
}

func TestLoginSetsCookie(t *testing.T) {
	code, cookie := post(t, newApp(t), "/login", `{"username":"supervisor","password":"clave-segura"}`)
	assert.Equal(t, 200, code)
	assert.Contains(t, cookie, AccessCookie+"=")
	assert.Contains(t, strings.ToLower(cookie), "httponly")
}

func TestLoginFailures(t *testing.T) {
	app := newApp(t)

	code, cookie := post(t, app, "/login", `{"username":"supervisor","password":"mala"}`)
	assert.Equal(t, 401, code)
	assert.Empty(t, cookie)

	code, _ = post(t, app, "/login", `{"username":"supervisor"}`)
	assert.Equal(t, 422, code)

	code, _ = post(t, app, "/login", `{not json`)
	assert.Equal(t, 400, code)
}

func TestLogoutClearsCookie(t *testing.T) {
	code, cookie := post(t, newApp(t), "/logout", "")
	assert.Equal(t, 200, code)
	assert.Contains(t, cookie, AccessCookie+"=;")
}
