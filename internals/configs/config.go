package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	JWTTTL    time.Duration

	// single supervisor account; the password is stored as a bcrypt hash
	SupervisorUsername     string
	SupervisorPasswordHash string

	SupabaseServiceKey string

	StatsCron         string
	PhotoFetchTimeout time.Duration
	DisplayTZ         *time.Location

	AllowedOrigins string
	LogLevel       string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTTTL = GetDuration("JWT_TTL", 12*time.Hour)
	SupervisorUsername = GetEnv("SUPERVISOR_USERNAME", "supervisor")
	SupervisorPasswordHash = GetEnv("SUPERVISOR_PASSWORD_HASH")
	SupabaseServiceKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")
	StatsCron = GetEnv("STATS_CRON", "@every 5m")
	PhotoFetchTimeout = GetDuration("PHOTO_FETCH_TIMEOUT", 15*time.Second)
	AllowedOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	LogLevel = GetEnv("LOG_LEVEL", "info")

	tz := GetEnv("DISPLAY_TZ", "America/Guatemala")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ DISPLAY_TZ %q invalid, using UTC", tz)
		loc = time.UTC
	}
	DisplayTZ = loc

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET not set!")
	}
	if SupervisorPasswordHash == "" {
		log.Println("❌ SUPERVISOR_PASSWORD_HASH not set, login disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func GetDuration(key string, def time.Duration) time.Duration {
	if v := GetEnv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
