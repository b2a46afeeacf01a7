package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sparkling-solutions/turnover-api/internal/api"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
	"github.com/sparkling-solutions/turnover-api/internal/core/state"
	"github.com/sparkling-solutions/turnover-api/internal/infrastructure/config"
	mongodb "github.com/sparkling-solutions/turnover-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sparkling-solutions/turnover-api/internal/infrastructure/db/redis"
	"github.com/sparkling-solutions/turnover-api/internal/infrastructure/snapshot"
	"github.com/sparkling-solutions/turnover-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// --- Snapshot backend ---
	var (
		repo        ports.SnapshotRepository
		mongoClient *mongo.Client
		mongoDB     *mongo.Database
	)
	switch cfg.Snapshot.Backend {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		mongoClient = client
		mongoDB = db
		repo = snapshot.NewMongoRepository(db)
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("mongodb disconnect error")
			}
		}()
	case "file":
		repo = snapshot.NewFileRepository(cfg.Snapshot.Path)
	default:
		log.Fatal().Str("backend", cfg.Snapshot.Backend).Msg("unknown snapshot backend")
	}

	// --- Optional Redis token cache ---
	var (
		rdb    *redis.Client
		tokens ports.TokenCache
	)
	if cfg.Redis.TokenCache {
		client, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		rdb = client
		tokens = redisdb.NewTokenCache(client)
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close error")
			}
		}()
	}

	// --- State store ---
	store := state.New(repo, log)
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load state")
	}

	// --- HTTP server ---
	e := api.NewRouter(store, tokens, mongoDB, rdb, cfg)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// --- Graceful shutdown ---
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
