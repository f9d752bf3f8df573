package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-kafe/internal/adminuser"
	"go-kafe/internal/auth"
	"go-kafe/internal/auth/token"
	"go-kafe/internal/bootstrap"
	"go-kafe/internal/events"
	"go-kafe/internal/messaging/kafka"
	"go-kafe/internal/messaging/kafka/producer"
	"go-kafe/internal/shared/connection"
	"go-kafe/internal/tenant"

	"go.uber.org/zap"
)

const compensationInterval = time.Minute

// RunWorker relays the outbox to kafka and retries failed admin
// provisioning rollbacks until SIGINT/SIGTERM.
func RunWorker(cfg Config) error {
	logger := zap.L().Named("app.worker")

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
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5, events.OrderLifecycleTopic)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	audit := bootstrap.NewStdoutAuditLogger()
	authService := auth.NewService(auth.NewRepository(gormDB), token.Config{Secret: cfg.JWTSecret})
	tenantService := tenant.NewService(sqlDB, tenant.NewRepository(gormDB), audit)
	adminUserService := adminuser.NewService(adminuser.NewRepository(gormDB), authService, tenantService, audit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)
	go retryCompensations(ctx, adminUserService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func retryCompensations(ctx context.Context, svc adminuser.Service, logger *zap.Logger) {
	ticker := time.NewTicker(compensationInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.RetryCompensations(ctx); err != nil {
				logger.Error("retry provisioning compensations failed", zap.Error(err))
			}
		}
	}
}
