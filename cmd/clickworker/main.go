package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/adapters/queue"
	"hotel_compare/internal/app"
	"hotel_compare/internal/shared"
	mysqlrepo "hotel_compare/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := mysqlrepo.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	observability.Serve(cfg.MetricsAddr, observability.InitRegistry())

	clicks := app.NewClickService(mysqlrepo.New(db)).OnStore(observability.ObserveStoredClick)
	consumer := queue.NewConsumer(cfg.AMQPURL, cfg.ClickQueue, clicks.Record)
	// malformed events will never store; anything else gets one more try
	consumer.Requeue = func(err error) bool { return !errors.Is(err, app.ErrBadClick) }

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("queue", cfg.ClickQueue).Msg("click worker starting")
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("click consumer failed")
	}
	log.Info().Msg("click worker stopped")
}
