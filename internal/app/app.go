package app

import (
	"context"
	"errors"

	"go-kafe/internal/migration"
	"go-kafe/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure, applies migrations and registers every
// module on router. The returned hook stops background work on shutdown.
func BuildApp(ctx context.Context, router *gin.Engine, cfg Config) (func(ctx context.Context), error) {
	logger := zap.L().Named("app")

	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is required")
	}

	if err := migration.Up(ctx, cfg.DSN()); err != nil {
		return nil, err
	}
	logger.Info("database schema up to date")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	relayCtx, stopRelay := context.WithCancel(context.Background())
	hub, err := registerModules(router, cfg, sqlDB, gormDB, rdb)
	if err != nil {
		stopRelay()
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}
	go hub.RunRedisRelay(relayCtx, rdb)

	return func(context.Context) {
		stopRelay()
		if err := rdb.Close(); err != nil {
			logger.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}, nil
}
