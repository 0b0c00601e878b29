// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "ptiadmin_backend/internals/features/users/auth/controller"
	rateLimiter "ptiadmin_backend/internals/middlewares"
)

// AuthRoutes mounts the public login/logout endpoints under /api/auth.
func AuthRoutes(app *fiber.App, h *controller.AuthController) {
	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), h.Login)
	baseAuth.Post("/logout", h.Logout)
}

// AuthAdminRoutes mounts session endpoints behind the supervisor guard.
func AuthAdminRoutes(r fiber.Router, h *controller.AuthController) {
	r.Get("/me", h.Me)
}
