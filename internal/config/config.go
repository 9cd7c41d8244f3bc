// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for boa-sync. It is
// populated by merging a JSON file, environment variables and command-line
// flags (see [GetConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Plaid holds the provider credentials and Link defaults.
	Plaid Plaid `envPrefix:"PLAID_"`

	// Storage holds the items file and ledger database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the link/webhook server settings used by `serve`.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings used by `serve`.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Plaid holds provider credentials and the process-wide defaults applied to
// Link token requests.
type Plaid struct {
	// ClientID is sent as the PLAID-CLIENT-ID header.
	// Env: PLAID_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Secret is sent as the PLAID-SECRET header. Never logged unmasked.
	// Env: PLAID_SECRET
	Secret string `env:"SECRET"`

	// Environment is one of sandbox, development or production.
	// Env: PLAID_ENV
	Environment string `env:"ENV"`

	// BaseURL overrides the environment host. Used by tests and proxies. A
	// plaid.com host must belong to Environment.
	// Env: PLAID_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ClientName is shown to the user inside Plaid Link.
	// Env: PLAID_CLIENT_NAME
	ClientName string `env:"CLIENT_NAME"`

	// WebhookURL is attached to link tokens unless the call site supplies one.
	// Env: PLAID_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// RedirectURI is attached to link tokens unless the call site supplies one.
	// Env: PLAID_REDIRECT_URI
	RedirectURI string `env:"REDIRECT_URI"`

	// Products is the default Link product list.
	// Env: PLAID_PRODUCTS (comma separated)
	Products []string `env:"PRODUCTS" envSeparator:","`

	// CountryCodes is the default Link country list.
	// Env: PLAID_COUNTRY_CODES (comma separated)
	CountryCodes []string `env:"COUNTRY_CODES" envSeparator:","`

	// Language is the Link display language.
	// Env: PLAID_LANGUAGE
	Language string `env:"LANGUAGE"`

	// RequestTimeout bounds every outbound provider call.
	// Env: PLAID_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// VerifyWebhooks enables Plaid-Verification JWT checks on inbound webhooks.
	// Env: PLAID_VERIFY_WEBHOOKS
	VerifyWebhooks bool `env:"VERIFY_WEBHOOKS"`
}

// Storage groups the configuration for the two persistence backends.
type Storage struct {
	// Items holds the items file settings.
	Items Items `envPrefix:"ITEMS_"`

	// DB holds the ledger database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Items configures the JSON items file.
type Items struct {
	// File is the path of the items file. A leading "~/" is expanded.
	// Env: STORAGE_ITEMS_FILE
	File string `env:"FILE"`

	// OnCorrupt decides what happens when the file cannot be decoded.
	// Env: STORAGE_ITEMS_ON_CORRUPT
	OnCorrupt CorruptPolicy `env:"ON_CORRUPT"`

	// WritePolicy decides whether write failures are surfaced.
	// Env: STORAGE_ITEMS_WRITE_POLICY
	WritePolicy WritePolicy `env:"WRITE_POLICY"`
}

// DB holds connection settings for the ledger database.
type DB struct {
	// DSN is either a postgres:// URL (Supabase) or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the link/webhook server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// CorruptPolicy selects the behaviour of the items store when its file is
// present but cannot be decoded.
type CorruptPolicy string

const (
	// CorruptDiscard logs a warning and starts with an empty store.
	CorruptDiscard CorruptPolicy = "discard"
	// CorruptFail refuses to open the store.
	CorruptFail CorruptPolicy = "fail"
)

// WritePolicy selects the behaviour of the items store when persisting fails.
type WritePolicy string

const (
	// WriteBestEffort logs the failure; the in-memory state stays authoritative.
	WriteBestEffort WritePolicy = "best_effort"
	// WriteStrict returns the failure and rolls the in-memory change back.
	WriteStrict WritePolicy = "strict"
)

// Plaid environments.
const (
	PlaidSandbox     = "sandbox"
	PlaidDevelopment = "development"
	PlaidProduction  = "production"
)

// Endpoint returns the provider base URL: BaseURL when set, otherwise the
// host of the configured environment.
func (p Plaid) Endpoint() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	return "https://" + p.Environment + ".plaid.com"
}

// IsSandbox reports whether the configured environment is sandbox.
func (p Plaid) IsSandbox() bool {
	return p.Environment == PlaidSandbox
}

// GetConfig loads, merges, and validates the configuration from all available
// sources. Later sources win for non-zero fields:
//  1. JSON file (path taken from flags, then from CONFIG)
//  2. Environment variables
//  3. Command-line flags registered with [RegisterFlags]
//
// Defaults are applied to whatever is still empty after the merge. flags may
// be nil.
func GetConfig(flags *Flags) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON(flags).
		withFlags(flags).
		build()
}
