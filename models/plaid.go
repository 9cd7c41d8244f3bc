// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LinkTokenRequest describes a link-token creation call.
type LinkTokenRequest struct {
	// UserID is the application user the Link session belongs to.
	UserID string

	// Products lists the provider products to initialise. Defaults to
	// transactions when empty.
	Products []string

	// CountryCodes restricts the institutions offered by Link. Defaults to US.
	CountryCodes []string

	// Language is the Link UI language. Defaults to "en".
	Language string

	// WebhookURL overrides the process-wide webhook URL when set.
	WebhookURL string

	// RedirectURI overrides the process-wide OAuth redirect URI when set.
	RedirectURI string

	// AccessToken switches Link into update mode for an existing item.
	AccessToken string
}

// LinkToken is a short-lived token used to open the client-side Link flow.
type LinkToken struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
	RequestID  string    `json:"request_id"`
}

// TokenExchange is the result of exchanging a public token. It is the single
// irreversible "link established" step.
type TokenExchange struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

// ProviderError is the structured error object the provider attaches to
// items and error responses.
type ProviderError struct {
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
	DisplayMessage string `json:"display_message,omitempty"`
	RequestID      string `json:"request_id,omitempty"`
	Status         int    `json:"status,omitempty"`
}

// ItemDetails is the provider's view of an item.
type ItemDetails struct {
	ItemID                string         `json:"item_id"`
	InstitutionID         *string        `json:"institution_id"`
	Webhook               string         `json:"webhook,omitempty"`
	AvailableProducts     []string       `json:"available_products"`
	BilledProducts        []string       `json:"billed_products"`
	ConsentExpirationTime *time.Time     `json:"consent_expiration_time"`
	UpdateType            string         `json:"update_type"`
	Error                 *ProviderError `json:"error"`
	RequestID             string         `json:"request_id"`
}

// ItemRemoval is the result of invalidating an access token at the provider.
type ItemRemoval struct {
	Removed   bool   `json:"removed"`
	RequestID string `json:"request_id"`
}

// Institution holds descriptive metadata about a bank.
type Institution struct {
	InstitutionID string   `json:"institution_id"`
	Name          string   `json:"name"`
	URL           *string  `json:"url"`
	Logo          *string  `json:"logo"`
	PrimaryColor  *string  `json:"primary_color"`
	CountryCodes  []string `json:"country_codes"`
	Products      []string `json:"products"`
	RequestID     string   `json:"request_id"`
}

// SandboxPublicToken is a public token minted without the Link UI. Sandbox only.
type SandboxPublicToken struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

// AccountBalances holds the balances reported for an account.
type AccountBalances struct {
	Available       *decimal.Decimal `json:"available"`
	Current         *decimal.Decimal `json:"current"`
	ISOCurrencyCode string           `json:"iso_currency_code"`
}

// Account is one financial account belonging to an item.
type Account struct {
	AccountID    string          `json:"account_id"`
	ItemID       string          `json:"item_id,omitempty"`
	Name         string          `json:"name"`
	OfficialName string          `json:"official_name,omitempty"`
	Mask         string          `json:"mask,omitempty"`
	Type         string          `json:"type"`
	Subtype      string          `json:"subtype,omitempty"`
	Balances     AccountBalances `json:"balances"`
}

// PersonalFinanceCategory is the provider's category of a transaction.
type PersonalFinanceCategory struct {
	Primary  string `json:"primary"`
	Detailed string `json:"detailed"`
}

// Transaction is a provider-synced transaction. A positive Amount is money
// leaving the account.
type Transaction struct {
	TransactionID           string                   `json:"transaction_id"`
	ItemID                  string                   `json:"item_id,omitempty"`
	AccountID               string                   `json:"account_id"`
	Amount                  decimal.Decimal          `json:"amount"`
	ISOCurrencyCode         string                   `json:"iso_currency_code"`
	Date                    Date                     `json:"date"`
	AuthorizedDate          *Date                    `json:"authorized_date"`
	Name                    string                   `json:"name"`
	MerchantName            string                   `json:"merchant_name,omitempty"`
	Pending                 bool                     `json:"pending"`
	PersonalFinanceCategory *PersonalFinanceCategory `json:"personal_finance_category,omitempty"`
	Removed                 bool                     `json:"removed,omitempty"`
}

// Category returns the primary personal-finance category, if any.
func (t Transaction) Category() string {
	if t.PersonalFinanceCategory == nil {
		return ""
	}
	return t.PersonalFinanceCategory.Primary
}

// RemovedTransaction identifies a transaction the provider retracted.
type RemovedTransaction struct {
	TransactionID string `json:"transaction_id"`
}

// TransactionsSyncPage is one page of the incremental transactions feed.
type TransactionsSyncPage struct {
	Added      []Transaction        `json:"added"`
	Modified   []Transaction        `json:"modified"`
	Removed    []RemovedTransaction `json:"removed"`
	NextCursor string               `json:"next_cursor"`
	HasMore    bool                 `json:"has_more"`
	RequestID  string               `json:"request_id"`
}

// Empty reports whether the page carries no changes.
func (p TransactionsSyncPage) Empty() bool {
	return len(p.Added) == 0 && len(p.Modified) == 0 && len(p.Removed) == 0
}

// WebhookVerificationKey is the JWK the provider signs webhooks with.
type WebhookVerificationKey struct {
	Alg       string `json:"alg"`
	Crv       string `json:"crv"`
	Kid       string `json:"kid"`
	Kty       string `json:"kty"`
	Use       string `json:"use"`
	X         string `json:"x"`
	Y         string `json:"y"`
	CreatedAt int64  `json:"created_at"`
	ExpiredAt *int64 `json:"expired_at"`
}
