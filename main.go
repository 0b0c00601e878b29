package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"ptiadmin_backend/internals/configs"
	database "ptiadmin_backend/internals/databases"
	"ptiadmin_backend/internals/features/inspections/dashboard/scheduler"
	dashboardService "ptiadmin_backend/internals/features/inspections/dashboard/service"
	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/report"
	"ptiadmin_backend/internals/features/inspections/report/pdf"
	subRepo "ptiadmin_backend/internals/features/inspections/submissions/repository"
	authService "ptiadmin_backend/internals/features/users/auth/service"
	middlewares "ptiadmin_backend/internals/middlewares"
	accessLog "ptiadmin_backend/internals/middlewares/logger"
	routes "ptiadmin_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	logger, err := configs.InitLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, logger, configs.AllowedOrigins, accessLog.LoggerMiddleware(configs.DisplayTZ.String()))

	// 🔌 DB connect + pool + warm-up
	if err := database.ConnectDB(logger); err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	database.TunePool(logger)
	database.WarmUpQueries(logger)

	registry := formschema.NewDefaultRegistry()
	normalizer := report.NewNormalizer(registry, configs.DisplayTZ)
	renderer := pdf.NewRenderer(
		pdf.NewHTTPFetcher(configs.PhotoFetchTimeout, configs.SupabaseServiceKey),
		pdf.Options{PhotoTimeout: configs.PhotoFetchTimeout, Location: configs.DisplayTZ, Logger: logger},
	)
	stats := dashboardService.NewStatsService(subRepo.NewSubmissionRepository(database.DB), 5*time.Minute, logger)
	tokens := authService.NewTokenService(configs.JWTSecret, configs.JWTTTL)

	// ⏱ scheduler after DB is ready
	refresher, err := scheduler.StartStatsRefresher(configs.StatsCron, stats, logger)
	if err != nil {
		logger.Fatal("scheduler", zap.Error(err))
	}

	routes.SetupRoutes(app, routes.Deps{
		DB:         database.DB,
		Log:        logger,
		Normalizer: normalizer,
		Renderer:   renderer,
		Stats:      stats,
		Tokens:     tokens,
		Auth:       authService.NewAuthService(configs.SupervisorUsername, configs.SupervisorPasswordHash, tokens),
		Secure:     os.Getenv("RAILWAY_ENVIRONMENT") != "",
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 90 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		logger.Info("✅ listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	// graceful shutdown: stop cron, drain HTTP, close pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	<-refresher.Stop().Done()
	_ = app.ShutdownWithContext(ctx)
	if err := database.Close(); err != nil {
		logger.Warn("db close", zap.Error(err))
	}
}
