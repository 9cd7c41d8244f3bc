// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/handler"
	"github.com/boasync/boa-sync/internal/handler/http"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/server"
	"github.com/boasync/boa-sync/internal/service"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/internal/workers"
	"github.com/boasync/boa-sync/models"
)

// Needs selects the optional components a command uses.
type Needs uint8

const (
	// NeedGateway validates Plaid credentials and builds the gateway.
	NeedGateway Needs = 1 << iota
	// NeedLedger connects to the ledger database and migrates it.
	NeedLedger
)

// ErrGatewayNotConfigured is returned by operations that talk to Plaid on an
// App built without [NeedGateway].
var ErrGatewayNotConfigured = errors.New("plaid gateway is not configured")

// App is the wired set of components for one process.
type App struct {
	Config    *config.Config
	Storages  *store.Storages
	Gateway   adapter.PlaidGateway
	Services  *service.Services
	BuildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New builds an App from cfg. The caller must Close it.
func New(ctx context.Context, cfg *config.Config, needs Needs, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	var (
		gateway adapter.PlaidGateway
		err     error
	)
	if needs&NeedGateway != 0 {
		gateway, err = adapter.NewPlaidGateway(cfg.Plaid, log)
		if err != nil {
			return nil, fmt.Errorf("error creating plaid gateway: %w", err)
		}
	}

	var storages *store.Storages
	if needs&NeedLedger != 0 {
		storages, err = store.NewStorages(ctx, cfg.Storage, log)
	} else {
		storages, err = store.NewItemsOnly(cfg.Storage, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	log.Debug().
		Str("func", "app.New").
		Str("items_file", cfg.Storage.Items.File).
		Bool("ledger", storages.Ledger != nil).
		Bool("gateway", gateway != nil).
		Str("plaid_env", cfg.Plaid.Environment).
		Msg("application wired")

	return &App{
		Config:    cfg,
		Storages:  storages,
		Gateway:   gateway,
		Services:  service.NewServices(storages, gateway, log),
		BuildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Serve runs the link/webhook server and the periodic sync job until ctx is
// cancelled, then shuts both down.
func (a *App) Serve(ctx context.Context) error {
	if a.Gateway == nil {
		return ErrGatewayNotConfigured
	}

	var verifier http.WebhookVerifier
	if a.Config.Plaid.VerifyWebhooks {
		verifier = adapter.NewWebhookVerifier(a.Gateway, a.logger)
	} else {
		a.logger.Warn().Str("func", "App.Serve").Msg("webhook verification is disabled")
	}

	handlers, err := handler.NewHandlers(a.Services, verifier, a.BuildInfo, a.Config.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.Config.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return workers.NewWorkers(a.logger,
		workers.NewServerWorker(srv),
		workers.NewSyncWorker(a.Services.SyncJob, a.Config.Workers.SyncInterval),
	).Run(ctx)
}

// Close releases the ledger connection.
func (a *App) Close() error {
	return a.Storages.Close()
}
