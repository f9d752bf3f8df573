package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go-kafe/internal/shared/connection"

	"go.uber.org/zap"
)

// Config is read from the environment once at start.
type Config struct {
	Env            string
	Port           string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	RedisAddr      string
	KafkaBroker    string
	JWTSecret      []byte
	PublicOrigin   string
	Location       *time.Location
	AllowedOrigins []string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func LoadConfig() (Config, error) {
	tz := getenv("APP_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("APP_TIMEZONE %q: %w", tz, err)
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Env:            getenv("APP_ENV", "development"),
		Port:           getenv("PORT", "3000"),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBSSLMode:      getenv("DB_SSLMODE", "disable"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      []byte(os.Getenv("JWT_SECRET")),
		PublicOrigin:   getenv("APP_PUBLIC_ORIGIN", "http://localhost:5173"),
		Location:       loc,
		AllowedOrigins: origins,
	}, nil
}

func (c Config) DSN() string {
	return connection.PostgresDSN(c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// NewLogger builds the process logger for APP_ENV.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
