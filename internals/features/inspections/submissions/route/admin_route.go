package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ptiadmin_backend/internals/features/inspections/report"
	"ptiadmin_backend/internals/features/inspections/submissions/controller"
	"ptiadmin_backend/internals/features/inspections/submissions/repository"
	"ptiadmin_backend/internals/features/inspections/submissions/service"
)

// SubmissionAdminRoutes mounts under the supervisor group (/api/a).
func SubmissionAdminRoutes(r fiber.Router, db *gorm.DB, norm *report.Normalizer, renderer service.PDFRenderer, log *zap.Logger) {
	svc := service.NewSubmissionService(repository.NewSubmissionRepository(db), norm, renderer, log)
	h := controller.NewSubmissionController(svc)

	r.Get("/form-types", h.FormTypes)

	g := r.Group("/submissions")
	g.Get("/", h.List)
	g.Get("/:id", h.Detail)
	g.Get("/:id/report", h.Report)
	g.Get("/:id/pdf", h.PDF)
}
