package main

import (
	"airline/config"
	"airline/di"
	"airline/shared/logger"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer := di.InitializeConsumer()
	if !consumer.Kafka.Enabled() {
		log.Fatal().Msg("Kafka brokers are not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := consumer.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}

		if err := consumer.Otel.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}()

	topic := cfg.Kafka.Topics.Reservation

	log.Info().Str("topic", topic).Str("group", cfg.Kafka.ConsumerGroup).Msg("Consuming reservation events")

	err := consumer.Kafka.Consume(ctx, cfg.Kafka.ConsumerGroup, topic, consumer.Handler.HandleReservation)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Reservation consumer stopped")
	}
}
