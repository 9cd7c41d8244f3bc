// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/service"
	"github.com/boasync/boa-sync/internal/validators"
	"github.com/boasync/boa-sync/models"
)

// WebhookVerifier checks the Plaid-Verification header of a webhook against
// its raw body.
type WebhookVerifier interface {
	Verify(ctx context.Context, body []byte, signedJWT string) error
}

type Handler struct {
	services  *service.Services
	verifier  WebhookVerifier
	validator validators.Validator
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil verifier accepts webhooks
// without checking their signature.
func NewHandler(services *service.Services, verifier WebhookVerifier, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Bool("verify_webhooks", verifier != nil).Msg("http handler created")
	return &Handler{
		services:  services,
		verifier:  verifier,
		validator: validators.NewRequestValidator(),
		buildInfo: buildInfo,
		logger:    logger,
	}
}
