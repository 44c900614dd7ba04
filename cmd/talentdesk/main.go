package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"talentdesk/internal/api"
	"talentdesk/internal/cache"
	cacheredis "talentdesk/internal/cache/redis"
	"talentdesk/internal/config"
	"talentdesk/internal/events"
	"talentdesk/internal/extractor"
	"talentdesk/internal/repository"
	"talentdesk/internal/store"
	"talentdesk/internal/telemetry"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newStore(cfg *config.Config, logger *zap.Logger) *store.Store {
	return store.New(cfg.StorePath, logger)
}

func newCache(cfg *config.Config, logger *zap.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		logger.Info("no redis configured, using in-process cache")
		return cache.NewMemory()
	}
	return cacheredis.New(cache.Options{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		DefaultTTL:    cfg.CacheTTL,
	})
}

func newExtractor(cfg *config.Config, c cache.Cache, logger *zap.Logger) (*extractor.Extractor, error) {
	return extractor.New(context.Background(), cfg, c, logger)
}

func registerTelemetry(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	if cfg.OTLPCollectorURL == "" {
		return
	}

	var shutdown func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fn, err := telemetry.InitTracer(ctx, "talentdesk", cfg.OTLPCollectorURL)
			if err != nil {
				logger.Error("failed to init tracer", zap.Error(err))
				return err
			}
			shutdown = fn
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown != nil {
				shutdown()
			}
			return nil
		},
	})
}

func registerPublisherShutdown(lc fx.Lifecycle, publisher events.Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			publisher.Close()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newStore,
			newCache,
			newExtractor,
			events.NewPublisher,
			repository.NewJobs,
			repository.NewCandidates,
			api.New,
		),
		fx.Invoke(
			registerTelemetry,
			registerPublisherShutdown,
			api.Register,
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
