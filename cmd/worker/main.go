package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/bookingapi/config"
	"github.com/Domenick1991/bookingapi/internal/email"
	"github.com/Domenick1991/bookingapi/internal/kafka"
	"github.com/Domenick1991/bookingapi/internal/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("load config", "error", err)
	}

	log := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Worker.Service,
	})

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("kafka.brokers is empty, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic, log)
	defer consumer.Close()

	emailSender := email.NewSender(log)

	log.Info("worker started", "topic", cfg.Kafka.EventsTopic, "group_id", cfg.Kafka.GroupID)

	err = consumer.Consume(ctx, emailSender.Send)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped", "error", err)
		return
	}
	log.Info("worker stopped")
}
