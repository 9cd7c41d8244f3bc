// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers served by `boa-sync serve`.
package handler

import (
	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/handler/http"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/service"
	"github.com/boasync/boa-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the link/webhook HTTP handler. verifier may be nil when
// webhook verification is disabled.
func NewHandlers(services *service.Services, verifier http.WebhookVerifier, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, verifier, buildInfo, logger)}, nil
}
