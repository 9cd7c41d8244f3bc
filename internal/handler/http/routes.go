// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.linkPage)
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/link/token", h.createLinkToken)
	router.Post("/api/link/exchange", h.exchangePublicToken)
	router.Post("/api/webhooks/plaid", h.plaidWebhook)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
