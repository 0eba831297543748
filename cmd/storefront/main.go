package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"VelvetStore/config"
	"VelvetStore/internal/kv"
	"VelvetStore/internal/scope"
	"VelvetStore/internal/storefront"
	"VelvetStore/pkg/kit"
)

const service = "storefront"

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := kit.NewLogger(service, cfg.App.LogLevel)
	defer func() { _ = log.Sync() }()

	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn("could not load .env", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("open store failed", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer closeStore()

	secret := cfg.Scope.Secret
	if secret == "" {
		// memory only; config rejects an empty secret for the shared drivers
		secret = uuid.NewString() + uuid.NewString()
		log.Warn("VV_SCOPE_SECRET not set, scope tokens will not survive a restart")
	}

	h := storefront.NewHandler(
		storefront.Deps{
			Store:          store,
			Tokens:         scope.NewTokenMaker(secret, cfg.Scope.TTL),
			AdminEmail:     cfg.Session.AdminEmail,
			LoginPath:      cfg.Session.LoginPath,
			LoginPerMin:    cfg.Limits.LoginPerMin,
			RegisterPerMin: cfg.Limits.RegisterPerMin,
		},
		storefront.HTTPDeps{
			Log:            log,
			Service:        service,
			Registry:       prometheus.NewRegistry(),
			MetricsEnabled: cfg.Metrics.Enabled,
			MetricsToken:   cfg.Metrics.Token,
		},
	)

	log.Info("store ready", zap.String("driver", cfg.Store.Driver))

	if err := kit.RunHTTPServer(ctx, ":"+cfg.App.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		s, err := kv.NewRedisStore(ctx, kv.RedisOptions{
			URL:      cfg.Redis.URL,
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

		s := kv.NewPostgresStore(db)
		if err := s.Ping(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, func() { _ = db.Close() }, nil
	}

	return kv.NewMemStore(), func() {}, nil
}
