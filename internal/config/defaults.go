// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultPlaidEnvironment = PlaidSandbox
	defaultClientName       = "boa-sync"
	defaultLanguage         = "en"
	defaultRequestTimeout   = 30 * time.Second
	defaultItemsFile        = "~/.plaid-items.json"
	defaultLedgerDSN        = "~/.boa-sync/ledger.db"
	defaultHTTPAddress      = "127.0.0.1:8484"
	defaultServerTimeout    = 15 * time.Second
	defaultSyncInterval     = 6 * time.Hour
	defaultLogLevel         = "info"
)

var (
	defaultProducts     = []string{"transactions"}
	defaultCountryCodes = []string{"US"}
)

func (cfg *Config) applyDefaults() {
	if cfg.Plaid.Environment == "" {
		cfg.Plaid.Environment = defaultPlaidEnvironment
	}
	if cfg.Plaid.ClientName == "" {
		cfg.Plaid.ClientName = defaultClientName
	}
	if cfg.Plaid.Language == "" {
		cfg.Plaid.Language = defaultLanguage
	}
	if len(cfg.Plaid.Products) == 0 {
		cfg.Plaid.Products = append([]string(nil), defaultProducts...)
	}
	if len(cfg.Plaid.CountryCodes) == 0 {
		cfg.Plaid.CountryCodes = append([]string(nil), defaultCountryCodes...)
	}
	if cfg.Plaid.RequestTimeout == 0 {
		cfg.Plaid.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Storage.Items.File == "" {
		cfg.Storage.Items.File = defaultItemsFile
	}
	cfg.Storage.Items.File = expandHome(cfg.Storage.Items.File)
	if cfg.Storage.Items.OnCorrupt == "" {
		cfg.Storage.Items.OnCorrupt = CorruptDiscard
	}
	if cfg.Storage.Items.WritePolicy == "" {
		cfg.Storage.Items.WritePolicy = WriteBestEffort
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultLedgerDSN
	}
	cfg.Storage.DB.DSN = expandHome(cfg.Storage.DB.DSN)

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultServerTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
}

// expandHome replaces a leading "~/" with the current user's home directory.
// Paths are returned unchanged when the home directory cannot be resolved.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
