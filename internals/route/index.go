// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ptiadmin_backend/internals/configs"
	"ptiadmin_backend/internals/constants"
	dashboardRoute "ptiadmin_backend/internals/features/inspections/dashboard/route"
	dashboardService "ptiadmin_backend/internals/features/inspections/dashboard/service"
	ordersRoute "ptiadmin_backend/internals/features/inspections/orders/route"
	"ptiadmin_backend/internals/features/inspections/report"
	submissionsRoute "ptiadmin_backend/internals/features/inspections/submissions/route"
	submissionsService "ptiadmin_backend/internals/features/inspections/submissions/service"
	authController "ptiadmin_backend/internals/features/users/auth/controller"
	authRoute "ptiadmin_backend/internals/features/users/auth/route"
	authService "ptiadmin_backend/internals/features/users/auth/service"
	authMiddleware "ptiadmin_backend/internals/middlewares/auth"
)

var startTime time.Time

type Deps struct {
	DB         *gorm.DB
	Log        *zap.Logger
	Normalizer *report.Normalizer
	Renderer   submissionsService.PDFRenderer
	Stats      *dashboardService.StatsService
	Tokens     *authService.TokenService
	Auth       *authService.AuthService
	Secure     bool
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := d.Log

	BaseRoutes(app, d.DB)

	// ===================== AUTH (public) =====================
	log.Info("setting up auth routes")
	authCtl := authController.NewAuthController(d.Auth, d.Secure, log)
	authRoute.AuthRoutes(app, authCtl)

	// ===================== SUPERVISOR =====================
	log.Info("setting up supervisor group")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Tokens:              d.Tokens,
			AllowCookieFallback: true,
			Log:                 log,
		}),
		authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("el panel"), constants.AdminRoles...),
	)

	authRoute.AuthAdminRoutes(admin, authCtl)
	submissionsRoute.SubmissionAdminRoutes(admin, d.DB, d.Normalizer, d.Renderer, log)
	ordersRoute.OrderAdminRoutes(admin, d.DB, log)
	dashboardRoute.DashboardAdminRoutes(admin, d.Stats)

	log.Info("routes mounted", zap.String("env", configs.GetEnv("RAILWAY_ENVIRONMENT", "local")))
}
