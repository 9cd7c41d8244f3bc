// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/models"
)

const (
	verificationHeader = "Plaid-Verification"
	maxWebhookBytes    = 1 << 20
)

// plaidWebhook answers 200 for every well-formed webhook it does not fail on,
// so the provider stops retrying deliveries for items this process does not
// track.
func (h *Handler) plaidWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		log.Err(err).Msg("reading webhook body failed")
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, ErrEmptyBody.Error(), http.StatusBadRequest)
		return
	}

	if h.verifier != nil {
		signed := r.Header.Get(verificationHeader)
		if signed == "" {
			log.Warn().Msg(ErrMissingVerificationHeader.Error())
			http.Error(w, ErrMissingVerificationHeader.Error(), http.StatusUnauthorized)
			return
		}
		if err = h.verifier.Verify(ctx, body, signed); err != nil {
			log.Warn().Err(err).Msg("webhook verification failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
	}

	var hook models.Webhook
	if err = json.Unmarshal(body, &hook); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err = h.validator.Validate(ctx, hook); err != nil {
		log.Warn().Err(err).Msg("webhook rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().
		Str("webhook_type", hook.WebhookType).
		Str("webhook_code", hook.WebhookCode).
		Str("item_id", hook.ItemID).
		Msg("webhook received")

	if err = h.services.WebhookService.HandleWebhook(ctx, hook); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Warn().Str("item_id", hook.ItemID).Msg("webhook for unknown item")
			w.WriteHeader(http.StatusOK)
			return
		}
		log.Err(err).Msg("handling webhook failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
