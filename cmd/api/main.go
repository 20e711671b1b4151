// @title           Fleet Tracking API
// @version         1.0
// @description     Bus fleet tracking: credentials, role-gated location reporting and queries.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/api"
	"github.com/transitline/fleet-tracking/internal/api/handler"
	"github.com/transitline/fleet-tracking/internal/core/service"
	mongodb "github.com/transitline/fleet-tracking/internal/infrastructure/db/mongo"
	redisdb "github.com/transitline/fleet-tracking/internal/infrastructure/db/redis"
	"github.com/transitline/fleet-tracking/internal/infrastructure/queue"
	"github.com/transitline/fleet-tracking/internal/infrastructure/simulator"
	"github.com/transitline/fleet-tracking/internal/pkg/config"
	"github.com/transitline/fleet-tracking/pkg/logger"
)

const (
	shutdownTimeout    = 15 * time.Second
	indexRetryInterval = 10 * time.Second
)

func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet; fall back to a bare stderr logger.
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "fleet-tracking",
		Env:     cfg.Env,
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found; relying on existing environment")
	}

	// --- Stores ---
	mongoCfg := mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database}
	mongoClient, db, err := mongodb.Connect(ctx, mongoCfg)
	if err != nil {
		if !cfg.DegradedStart {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		log.Error().Err(err).Msg("MongoDB unreachable, starting degraded")
		if mongoClient, db, err = mongodb.Open(mongoCfg); err != nil {
			log.Fatal().Err(err).Msg("failed to create MongoDB client")
		}
	}

	redisCfg := redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}
	redisClient, err := redisdb.Connect(ctx, redisCfg)
	if err != nil {
		if !cfg.DegradedStart {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		log.Error().Err(err).Msg("Redis unreachable, starting degraded")
		redisClient = redisdb.Open(redisCfg)
	}

	authRepo := mongodb.NewAuthRepository(db)
	busRepo := mongodb.NewBusRepository(db)
	routeRepo := mongodb.NewRouteRepository(db)
	tripRepo := mongodb.NewTripRepository(db)
	historyRepo := mongodb.NewLocationHistoryRepository(db)
	seedRepo := mongodb.NewSeedRepository(db)

	indexes := mongodb.NewIndexBuilder(authRepo, busRepo, routeRepo, tripRepo, historyRepo)
	indexErr := indexes.Ensure(ctx)
	if indexErr != nil && !cfg.DegradedStart {
		log.Fatal().Err(indexErr).Msg("failed to create indexes")
	}

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token service")
	}
	authn := service.NewAuthenticator(tokens, authRepo)
	authSvc := service.NewAuthService(authRepo, tokens, authn, logger.Component(log, "auth"))
	trackingSvc := service.NewTrackingService(busRepo, historyRepo, logger.Component(log, "tracking"))
	busSvc := service.NewBusService(busRepo, routeRepo, logger.Component(log, "buses"))
	routeSvc := service.NewRouteService(routeRepo, tripRepo, logger.Component(log, "routes"))
	tripSvc := service.NewTripService(tripRepo, routeRepo, busRepo, logger.Component(log, "trips"))
	seedSvc := service.NewSeedService(seedRepo, cfg.IsDevelopment(), logger.Component(log, "seed"))

	// --- Ingest ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	ingestSvc := service.NewLocationIngestService(trackingSvc, redisdb.NewDedupChecker(redisClient), logger.Component(log, "ingest"))
	dispatcher := queue.NewDispatcher(cfg.Ingest.Workers, ingestSvc, logger.Component(log, "dispatcher"))
	dispatcher.Start(workerCtx)

	if indexErr != nil {
		log.Error().Err(indexErr).Msg("index creation failed, retrying in background")
		go indexes.Retry(workerCtx, indexRetryInterval, log)
	}

	if cfg.Simulator.Enabled {
		sim := simulator.New(busRepo, dispatcher, cfg.Simulator.Interval, logger.Component(log, "simulator"))
		go sim.Run(workerCtx)
	}

	e := api.NewRouter(api.Deps{
		Auth:          authSvc,
		Authenticator: authn,
		Tracking:      trackingSvc,
		Buses:         busSvc,
		Routes:        routeSvc,
		Trips:         tripSvc,
		Seeder:        seedSvc,
		Dispatcher:    dispatcher,
		Checks: []handler.DependencyCheck{
			{Name: "mongodb", Ping: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
			{Name: "indexes", Ping: indexes.Check},
		},
		Log:             log,
		LoginRatePerSec: cfg.Login.RatePerSec,
		LoginBurst:      cfg.Login.Burst,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("fleet tracking API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}

	// Stop the workers only after the server has stopped accepting batches.
	cancelWorkers()
	dispatcher.Wait()

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect error")
	}
}
