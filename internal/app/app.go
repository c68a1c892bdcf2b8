package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/kosa-java-team2/Hanger/internal/adapter/snapshot"
	"github.com/kosa-java-team2/Hanger/internal/app/config"
	"github.com/kosa-java-team2/Hanger/internal/cli"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/metrics"
	"github.com/kosa-java-team2/Hanger/internal/platform/profanity"
	"github.com/kosa-java-team2/Hanger/internal/repository"
	"github.com/kosa-java-team2/Hanger/internal/service"
)

type App struct {
	cfg   *config.Config
	log   logger.Logger
	store repository.Store
	shell *cli.CLI
}

func New(cfg *config.Config) (*App, error) {
	logCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	}
	appLogger, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Info("Logger initialized")
	appLogger.Infof("Configuration loaded: Env=%s, Snapshot=%s", cfg.Env, cfg.Snapshot.Path)

	m := metrics.NewManager("hanger")

	store := snapshot.New(cfg.Snapshot.Path, appLogger, m)
	if err := store.Load(); err != nil {
		// A broken snapshot must not keep the market from starting.
		if errors.Is(err, repository.ErrSnapshotRead) {
			appLogger.Warnf("Snapshot unreadable, starting empty: %v", err)
		} else {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
	}
	appLogger.Infof("Store ready: %d accounts, %d listings, %d trades",
		len(store.Accounts()), len(store.Listings()), len(store.Trades()))

	filter := profanity.NewFilter()

	auth := service.NewAuthService(store, appLogger, filter, service.AuthConfig{
		JWTSecret:     cfg.Auth.JWTSecret,
		TokenTTL:      cfg.Auth.TokenTTL,
		AdminPassword: cfg.Auth.AdminPassword,
	})
	if err := auth.EnsureDefaultAdmin(); err != nil {
		return nil, fmt.Errorf("failed to provision admin account: %w", err)
	}

	listings := service.NewListingService(store, appLogger, filter)
	trades := service.NewTradeService(store, appLogger, m)
	notifications := service.NewNotificationService(store, appLogger)
	admin := service.NewAdminService(store, appLogger)

	shell := cli.New(os.Stdin, os.Stdout, appLogger, auth, listings, trades, notifications, admin)

	return &App{
		cfg:   cfg,
		log:   appLogger,
		store: store,
		shell: shell,
	}, nil
}

// Run blocks in the interactive shell and persists the store on the way out.
func (a *App) Run() error {
	a.shell.Run()

	a.log.Info("Shutting down, saving snapshot...")
	if err := a.store.Save(); err != nil {
		a.log.Errorf("Final snapshot save failed: %v", err)
		return err
	}
	a.log.Info("Snapshot saved. Goodbye.")
	return nil
}
