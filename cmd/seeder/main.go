package main

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/adapters/partners"
	redisad "hotel_compare/internal/adapters/redis"
	"hotel_compare/internal/app"
	"hotel_compare/internal/shared"
	mysqlrepo "hotel_compare/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	seed := cfg.SimSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("weeks", cfg.SeedWeeks).
		Uint64("seed", seed).
		Msg("seeder starting")

	db, err := mysqlrepo.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	sim := partners.NewSeeded(seed, cfg.SeedRefundableProb)
	svc := app.NewSeedService(repo, sim, cache, cfg.SeedWeeks)

	// 2) partners and destinations first; hotels reference neither but the API lists them
	if err := svc.SeedPartners(ctx, shared.SeedPartners()); err != nil {
		log.Fatal().Err(err).Msg("seed partners failed")
	}
	if err := svc.SeedDestinations(ctx, shared.SeedDestinations); err != nil {
		log.Fatal().Err(err).Msg("seed destinations failed")
	}
	log.Info().Int("destinations", len(shared.SeedDestinations)).Msg("catalogue seeded")

	// 3) hotels and rates, fanned out
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var rates, failed atomic.Int64

	for _, h := range shared.SeedHotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(int64(1))

			n, err := svc.SeedHotel(ctx, h)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("hotel", h.Name).Err(err).Msg("seed failed")
				return
			}
			rates.Add(int64(n))
			log.Info().Str("hotel", h.Name).Int("rates", n).Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().
		Int("hotels", len(shared.SeedHotels)).
		Int64("rates", rates.Load()).
		Int64("failed", failed.Load()).
		Msg("seeding completed")
	if failed.Load() > 0 {
		log.Fatal().Msg("some hotels failed to seed")
	}
}
