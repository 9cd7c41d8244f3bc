// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/utils"
	"github.com/boasync/boa-sync/models"
)

//go:embed templates/link.html
var templatesFS embed.FS

var linkTemplate = template.Must(template.ParseFS(templatesFS, "templates/link.html"))

type linkPageData struct {
	LinkToken string
	UpdateFor string
}

type linkTokenRequest struct {
	UserID   string   `json:"user_id"`
	ItemID   string   `json:"item_id"`
	Products []string `json:"products"`
}

// linkPage renders Plaid Link with a fresh token. ?item_id=... opens Link in
// update mode for a stored item.
func (h *Handler) linkPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID := strings.TrimSpace(r.URL.Query().Get("item_id"))

	var (
		token models.LinkToken
		err   error
	)
	if itemID != "" {
		token, err = h.services.ItemService.CreateUpdateLinkToken(ctx, itemID)
	} else {
		token, err = h.services.ItemService.CreateLinkToken(ctx, r.URL.Query().Get("user_id"), nil)
	}
	if err != nil {
		log.Err(err).Msg("creating link token failed")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = linkTemplate.Execute(w, linkPageData{LinkToken: token.LinkToken, UpdateFor: itemID}); err != nil {
		log.Err(err).Msg("rendering link page failed")
	}
}

func (h *Handler) createLinkToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req linkTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	var (
		token models.LinkToken
		err   error
	)
	if req.ItemID != "" {
		token, err = h.services.ItemService.CreateUpdateLinkToken(ctx, req.ItemID)
	} else {
		token, err = h.services.ItemService.CreateLinkToken(ctx, req.UserID, req.Products)
	}
	if err != nil {
		log.Err(err).Msg("creating link token failed")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		log.Err(err).Msg("writing link token failed")
	}
}

func (h *Handler) exchangePublicToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("exchange request rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Link(ctx, req.PublicToken, req.UserID)
	if err != nil {
		log.Err(err).Msg("linking item failed")
		writeError(w, r, err)
		return
	}

	log.Info().Str("item_id", item.ItemID).Msg("item linked through link page")
	if _, err = utils.WriteJSON(w, item.PublicView(), http.StatusCreated); err != nil {
		log.Err(err).Msg("writing linked item failed")
	}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
