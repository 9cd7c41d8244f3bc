// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/utils"
	"github.com/boasync/boa-sync/models"
)

const (
	plaidAPIVersion = "2020-09-14"

	// DefaultSandboxInstitution is First Platypus Bank, the sandbox
	// institution used when none is given.
	DefaultSandboxInstitution = "ins_109508"

	// DefaultSyncPageSize is the largest page /transactions/sync returns.
	DefaultSyncPageSize = 500

	defaultProduct = "transactions"
	defaultCountry = "US"
	defaultLang    = "en"
)

type plaidGateway struct {
	client *utils.HTTPClient
	cfg    config.Plaid

	logger *logger.Logger
}

// NewPlaidGateway constructs the HTTP implementation of [PlaidGateway] for
// the configured environment. Missing credentials are reported before any
// request is made.
func NewPlaidGateway(cfg config.Plaid, log *logger.Logger) (PlaidGateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.Endpoint(), "/"), cfg.RequestTimeout)
	client.
		SetHeader("PLAID-CLIENT-ID", cfg.ClientID).
		SetHeader("PLAID-SECRET", cfg.Secret).
		SetHeader("Plaid-Version", plaidAPIVersion)

	return &plaidGateway{client: client, cfg: cfg, logger: log}, nil
}

type linkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

type linkTokenCreateRequest struct {
	ClientName   string        `json:"client_name"`
	Language     string        `json:"language"`
	CountryCodes []string      `json:"country_codes"`
	User         linkTokenUser `json:"user"`
	Products     []string      `json:"products,omitempty"`
	Webhook      string        `json:"webhook,omitempty"`
	RedirectURI  string        `json:"redirect_uri,omitempty"`
	AccessToken  string        `json:"access_token,omitempty"`
}

type accessTokenRequest struct {
	AccessToken string `json:"access_token"`
}

type publicTokenExchangeRequest struct {
	PublicToken string `json:"public_token"`
}

type institutionOptions struct {
	IncludeOptionalMetadata bool `json:"include_optional_metadata"`
}

type institutionGetRequest struct {
	InstitutionID string             `json:"institution_id"`
	CountryCodes  []string           `json:"country_codes"`
	Options       institutionOptions `json:"options"`
}

type sandboxPublicTokenRequest struct {
	InstitutionID   string   `json:"institution_id"`
	InitialProducts []string `json:"initial_products"`
}

type transactionsSyncRequest struct {
	AccessToken string `json:"access_token"`
	Cursor      string `json:"cursor,omitempty"`
	Count       int    `json:"count"`
}

type webhookKeyRequest struct {
	KeyID string `json:"key_id"`
}

// CreateLinkToken implements [PlaidGateway].
func (p *plaidGateway) CreateLinkToken(ctx context.Context, req models.LinkTokenRequest) (models.LinkToken, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return models.LinkToken{}, ErrMissingUserID
	}

	body := linkTokenCreateRequest{
		ClientName:   p.cfg.ClientName,
		Language:     firstNonEmpty(req.Language, p.cfg.Language, defaultLang),
		CountryCodes: firstNonEmptyList(req.CountryCodes, p.cfg.CountryCodes, []string{defaultCountry}),
		User:         linkTokenUser{ClientUserID: req.UserID},
		Webhook:      firstNonEmpty(req.WebhookURL, p.cfg.WebhookURL),
		RedirectURI:  firstNonEmpty(req.RedirectURI, p.cfg.RedirectURI),
		AccessToken:  req.AccessToken,
	}
	// update mode reuses the item's products
	if req.AccessToken == "" {
		body.Products = firstNonEmptyList(req.Products, p.cfg.Products, []string{defaultProduct})
	}

	var token models.LinkToken
	if err := p.post(ctx, "/link/token/create", body, &token); err != nil {
		return models.LinkToken{}, err
	}

	p.logger.Debug().
		Str("func", "plaidGateway.CreateLinkToken").
		Bool("update_mode", req.AccessToken != "").
		Str("request_id", token.RequestID).
		Msg("link token created")

	return token, nil
}

// CreateUpdateLinkToken implements [PlaidGateway].
func (p *plaidGateway) CreateUpdateLinkToken(ctx context.Context, userID, accessToken string) (models.LinkToken, error) {
	if accessToken == "" {
		return models.LinkToken{}, ErrMissingAccessToken
	}
	return p.CreateLinkToken(ctx, models.LinkTokenRequest{UserID: userID, AccessToken: accessToken})
}

// ExchangePublicToken implements [PlaidGateway].
func (p *plaidGateway) ExchangePublicToken(ctx context.Context, publicToken string) (models.TokenExchange, error) {
	var exchange models.TokenExchange
	if err := p.post(ctx, "/item/public_token/exchange", publicTokenExchangeRequest{PublicToken: publicToken}, &exchange); err != nil {
		return models.TokenExchange{}, err
	}

	p.logger.Info().
		Str("func", "plaidGateway.ExchangePublicToken").
		Str("item_id", exchange.ItemID).
		Str("access_token", utils.MaskSecret(exchange.AccessToken)).
		Str("request_id", exchange.RequestID).
		Msg("public token exchanged")

	return exchange, nil
}

// GetItem implements [PlaidGateway].
func (p *plaidGateway) GetItem(ctx context.Context, accessToken string) (models.ItemDetails, error) {
	if accessToken == "" {
		return models.ItemDetails{}, ErrMissingAccessToken
	}

	var resp struct {
		Item      models.ItemDetails `json:"item"`
		RequestID string             `json:"request_id"`
	}
	if err := p.post(ctx, "/item/get", accessTokenRequest{AccessToken: accessToken}, &resp); err != nil {
		return models.ItemDetails{}, err
	}

	resp.Item.RequestID = resp.RequestID
	return resp.Item, nil
}

// RemoveItem implements [PlaidGateway].
func (p *plaidGateway) RemoveItem(ctx context.Context, accessToken string) (models.ItemRemoval, error) {
	if accessToken == "" {
		return models.ItemRemoval{}, ErrMissingAccessToken
	}

	var removal models.ItemRemoval
	if err := p.post(ctx, "/item/remove", accessTokenRequest{AccessToken: accessToken}, &removal); err != nil {
		return models.ItemRemoval{}, err
	}
	removal.Removed = true

	p.logger.Info().
		Str("func", "plaidGateway.RemoveItem").
		Str("access_token", utils.MaskSecret(accessToken)).
		Str("request_id", removal.RequestID).
		Msg("item removed at provider")

	return removal, nil
}

// GetInstitution implements [PlaidGateway].
func (p *plaidGateway) GetInstitution(ctx context.Context, institutionID string, countryCodes []string) (models.Institution, error) {
	body := institutionGetRequest{
		InstitutionID: institutionID,
		CountryCodes:  firstNonEmptyList(countryCodes, p.cfg.CountryCodes, []string{defaultCountry}),
		Options:       institutionOptions{IncludeOptionalMetadata: true},
	}

	var resp struct {
		Institution models.Institution `json:"institution"`
		RequestID   string             `json:"request_id"`
	}
	if err := p.post(ctx, "/institutions/get_by_id", body, &resp); err != nil {
		return models.Institution{}, err
	}

	resp.Institution.RequestID = resp.RequestID
	return resp.Institution, nil
}

// CreateSandboxPublicToken implements [PlaidGateway].
func (p *plaidGateway) CreateSandboxPublicToken(ctx context.Context, institutionID string, products []string) (models.SandboxPublicToken, error) {
	if !p.cfg.IsSandbox() {
		return models.SandboxPublicToken{}, fmt.Errorf("%w: environment is %q", ErrSandboxOnly, p.cfg.Environment)
	}

	body := sandboxPublicTokenRequest{
		InstitutionID:   firstNonEmpty(institutionID, DefaultSandboxInstitution),
		InitialProducts: firstNonEmptyList(products, []string{defaultProduct}),
	}

	var token models.SandboxPublicToken
	if err := p.post(ctx, "/sandbox/public_token/create", body, &token); err != nil {
		return models.SandboxPublicToken{}, err
	}
	return token, nil
}

// GetAccounts implements [PlaidGateway].
func (p *plaidGateway) GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	var resp struct {
		Accounts []models.Account `json:"accounts"`
		Item     struct {
			ItemID string `json:"item_id"`
		} `json:"item"`
	}
	if err := p.post(ctx, "/accounts/get", accessTokenRequest{AccessToken: accessToken}, &resp); err != nil {
		return nil, err
	}

	for i := range resp.Accounts {
		resp.Accounts[i].ItemID = resp.Item.ItemID
	}
	return resp.Accounts, nil
}

// SyncTransactions implements [PlaidGateway].
func (p *plaidGateway) SyncTransactions(ctx context.Context, accessToken, cursor string, count int) (models.TransactionsSyncPage, error) {
	if accessToken == "" {
		return models.TransactionsSyncPage{}, ErrMissingAccessToken
	}
	if count <= 0 || count > DefaultSyncPageSize {
		count = DefaultSyncPageSize
	}

	var page models.TransactionsSyncPage
	body := transactionsSyncRequest{AccessToken: accessToken, Cursor: cursor, Count: count}
	if err := p.post(ctx, "/transactions/sync", body, &page); err != nil {
		return models.TransactionsSyncPage{}, err
	}

	p.logger.Debug().
		Str("func", "plaidGateway.SyncTransactions").
		Int("added", len(page.Added)).
		Int("modified", len(page.Modified)).
		Int("removed", len(page.Removed)).
		Bool("has_more", page.HasMore).
		Str("request_id", page.RequestID).
		Msg("transactions page fetched")

	return page, nil
}

// GetWebhookVerificationKey implements [PlaidGateway].
func (p *plaidGateway) GetWebhookVerificationKey(ctx context.Context, keyID string) (models.WebhookVerificationKey, error) {
	var resp struct {
		Key models.WebhookVerificationKey `json:"key"`
	}
	if err := p.post(ctx, "/webhook_verification_key/get", webhookKeyRequest{KeyID: keyID}, &resp); err != nil {
		return models.WebhookVerificationKey{}, err
	}
	return resp.Key, nil
}

func (p *plaidGateway) post(ctx context.Context, path string, body, result any) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		p.logger.Err(err).Str("func", "plaidGateway.post").Str("path", path).Msg("provider request failed")
		return fmt.Errorf("%s request: %w", path, err)
	}

	if err = mapPlaidError(resp); err != nil {
		p.logger.Warn().Err(err).
			Str("func", "plaidGateway.post").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("provider returned an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w from %s: %w", ErrDecodingResponse, path, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
