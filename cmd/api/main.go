package main

import (
	"context"
	"time"
	_ "time/tzdata"

	"go-kafe/internal/app"
	"go-kafe/internal/bootstrap"
	"go-kafe/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := app.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := app.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependency + routes
	shutdown, err := app.BuildApp(context.Background(), r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	// No write timeout: live subscriptions hold their connection open.
	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:           cfg.Port,
			ServiceName:    "go-kafe-api",
			AllowedOrigins: cfg.AllowedOrigins,
			ReadTimeout:    5 * time.Second,
			IdleTimeout:    60 * time.Second,
		},
		auditLogger,
		shutdown,
	)
}
