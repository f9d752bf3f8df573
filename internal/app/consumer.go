package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-kafe/internal/events"
	"go-kafe/internal/messaging/kafka"
	"go-kafe/internal/messaging/kafka/consumer"
	"go-kafe/internal/order"
	"go-kafe/internal/shared/connection"
	"go-kafe/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer writes order lifecycle events from kafka into the order
// audit log until SIGINT/SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

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

	orderService := order.NewService(
		sqlDB,
		order.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		nil,
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.OrderLifecycleTopic,
		GroupID:        "go-kafe-order-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeOrderLifecycle(ctx, reader, orderService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
