package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gct/report-admin/internal/api"
	"github.com/gct/report-admin/internal/core/ports"
	"github.com/gct/report-admin/internal/infrastructure/config"
	mongodb "github.com/gct/report-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/gct/report-admin/internal/infrastructure/db/redis"
	"github.com/gct/report-admin/internal/infrastructure/session"
	"github.com/gct/report-admin/pkg/logger"

	_ "github.com/gct/report-admin/docs"

	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	if err := mongodb.EnsureIndexes(ctx, userRepo, reportRepo); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongodb.EnsureDefaultAdmin(ctx, userRepo, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// Sessions live in Redis when an address is configured, otherwise in a
	// process-local store (single-node deployments and tests).
	var rdb *goredis.Client
	var sessions ports.SessionStore
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
	} else {
		log.Warn().Msg("no redis address configured, using in-process session store")
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	}

	e := api.NewRouter(cfg, log, db, rdb, sessions)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("report admin API started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
