package route

import (
	"github.com/gofiber/fiber/v2"

	"ptiadmin_backend/internals/features/inspections/dashboard/controller"
)

func DashboardAdminRoutes(r fiber.Router, svc controller.StatsGetter) {
	h := controller.NewStatsController(svc)

	g := r.Group("/dashboard")
	g.Get("/stats", h.Get)
}
