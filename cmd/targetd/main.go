package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/targetform/internal/db"
	"github.com/dmitrymomot/targetform/modules/target"
	"github.com/dmitrymomot/targetform/pkg/clientip"
	"github.com/dmitrymomot/targetform/pkg/config"
	"github.com/dmitrymomot/targetform/pkg/environment"
	"github.com/dmitrymomot/targetform/pkg/httpserver"
	"github.com/dmitrymomot/targetform/pkg/logger"
	"github.com/dmitrymomot/targetform/pkg/pg"
	"github.com/dmitrymomot/targetform/pkg/ratelimiter"
	"github.com/dmitrymomot/targetform/pkg/requestid"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"APP_SERVICE" envDefault:"targetd"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "targetd:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		appCfg    appConfig
		httpCfg   httpserver.Config
		pgCfg     pg.Config
		targetCfg target.Config
		limitCfg  ratelimiter.Config
		ipCfg     clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&targetCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&ipCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(environment.Parse(appCfg.Env), appCfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if appCfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(appCfg.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	storage, checks, closeStorage, err := openStorage(ctx, pgCfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	if targetCfg.SeedFile != "" {
		inputs, err := target.LoadSeedFile(targetCfg.SeedFile)
		if err != nil {
			return err
		}
		res, err := target.Seed(ctx, storage, log, inputs, targetCfg.Options()...)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "targets seeded",
			slog.Int("created", res.Created),
			slog.Int("skipped", res.Skipped),
			slog.Int("rejected", len(res.Rejected)),
			logger.Component("seed"),
		)
	}

	limitStore := ratelimiter.NewMemoryStore()
	defer limitStore.Close()
	limiter, err := ratelimiter.NewBucket(limitStore, limitCfg)
	if err != nil {
		return err
	}

	ips, err := clientip.NewResolver(ipCfg)
	if err != nil {
		return err
	}

	svc := target.NewService(targetCfg, storage, nil, log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, ips.Middleware)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))
	r.With(ratelimiter.Middleware(limiter, clientip.Key,
		ratelimiter.WithSkipper(ratelimiter.SkipSafeMethods),
		ratelimiter.WithLimitedHandler(svc.Limited()),
	)).Mount("/targets", svc.Handle())

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openStorage picks Postgres when a connection string is configured and the
// in-memory store otherwise.
func openStorage(ctx context.Context, cfg pg.Config, log *slog.Logger) (target.Storage, []httpserver.Check, func(), error) {
	if !cfg.Enabled() {
		log.WarnContext(ctx, "PG_CONN_URL not set, targets are kept in memory", logger.Component("storage"))
		return target.NewMemoryStorage(), nil, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := pg.Migrate(ctx, pool, cfg, log, db.Migrations); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	checks := []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}}
	return target.NewPostgresStorage(pool), checks, pool.Close, nil
}
