// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownEnvVars = []string{
	"PLAID_CLIENT_ID", "PLAID_SECRET", "PLAID_ENV", "PLAID_BASE_URL", "PLAID_CLIENT_NAME",
	"PLAID_WEBHOOK_URL", "PLAID_REDIRECT_URI", "PLAID_PRODUCTS", "PLAID_COUNTRY_CODES",
	"PLAID_LANGUAGE", "PLAID_REQUEST_TIMEOUT", "PLAID_VERIFY_WEBHOOKS",
	"STORAGE_ITEMS_FILE", "STORAGE_ITEMS_ON_CORRUPT", "STORAGE_ITEMS_WRITE_POLICY",
	"STORAGE_DB_DATABASE_URI", "SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"WORKERS_SYNC_INTERVAL", "LOG_LEVEL", "CONFIG",
}

// clearEnv blanks every variable the config reads; caarlos0/env ignores empty
// values, so this isolates tests from the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range knownEnvVars {
		t.Setenv(key, "")
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
