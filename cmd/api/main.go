package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "hotel_compare/internal/adapters/http_server"
	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/adapters/partners"
	"hotel_compare/internal/adapters/queue"
	redisad "hotel_compare/internal/adapters/redis"
	"hotel_compare/internal/app"
	"hotel_compare/internal/shared"
	mysqlrepo "hotel_compare/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	// db
	db, err := mysqlrepo.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	clicks := queue.NewPublisher(cfg.AMQPURL, cfg.ClickQueue, cfg.ClickBuffer)
	defer clicks.Close()

	seed := cfg.SimSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	sim := partners.NewSeeded(seed, cfg.QuoteRefundableProb)

	catalog := app.NewCatalogService(repo, cache, cfg.CacheTTL)
	search := app.NewSearchService(repo, cfg.SearchLimit, cfg.RateWindow).
		OnSearch(observability.ObserveSearch)

	// http
	var srvOpts []server.Option
	if cfg.TrustProxy {
		srvOpts = append(srvOpts, server.WithTrustedProxy())
	}
	srv := server.New(srvOpts...)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Search:        search,
		Quotes:        app.NewQuoteService(catalog, catalog, sim),
		Catalog:       catalog,
		Redirect:      app.NewRedirectService(catalog, clicks),
		RedirectLimit: server.NewIPLimiter(cfg.RedirectRPS, cfg.RedirectBurst),
		Ready: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return err
			}
			return cache.Ping(ctx)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
