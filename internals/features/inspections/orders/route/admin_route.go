package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ptiadmin_backend/internals/features/inspections/orders/controller"
	"ptiadmin_backend/internals/features/inspections/orders/repository"
	subRepo "ptiadmin_backend/internals/features/inspections/submissions/repository"
)

func OrderAdminRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	h := controller.NewSiteVisitController(
		repository.NewSiteVisitRepository(db),
		subRepo.NewSubmissionRepository(db),
		log,
	)

	g := r.Group("/orders")
	g.Get("/", h.List)
	g.Get("/geojson", h.GeoJSON) // before /:id
	g.Get("/:id", h.Detail)
}
