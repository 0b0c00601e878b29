package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ptiadmin_backend/internals/configs"
)

var DB *gorm.DB

// DSN prefers DATABASE_URL and otherwise builds one from DB_* parts.
// statement_timeout keeps a slow query from pinning a pool connection.
func DSN() string {
	if url := configs.GetEnv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ptiadmin&options=-c statement_timeout=%d",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
		configs.GetInt("DB_STATEMENT_TIMEOUT_MS", 5000),
	)
}

func ConnectDB(logger *zap.Logger) error {
	logger.Info("🔌 connecting to PostgreSQL")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:      configs.NewGormLogger(logger),
		PrepareStmt: false,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	DB = db
	logger.Info("✅ DB connected")
	return nil
}

func TunePool(logger *zap.Logger) {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Warn("pool tune", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(logger *zap.Logger) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx); err != nil {
			logger.Warn("warm-up ping", zap.Error(err))
			return
		}
		// the dashboard list is the hottest query
		if err := DB.WithContext(ctx).Exec("SELECT id FROM submissions ORDER BY created_at DESC LIMIT 1").Error; err != nil {
			logger.Warn("warm-up query", zap.Error(err))
		}
	}()
}

func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
