// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [Config] satisfies all invariants that do
// not depend on the command being run. Plaid credentials are checked
// separately by [Plaid.Validate] because offline commands do not need them.
func (cfg *Config) validate() error {
	switch cfg.Plaid.Environment {
	case PlaidSandbox, PlaidDevelopment, PlaidProduction:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPlaidEnvironment, cfg.Plaid.Environment)
	}
	if err := cfg.Plaid.checkBaseURL(); err != nil {
		return err
	}

	switch cfg.Storage.Items.OnCorrupt {
	case CorruptDiscard, CorruptFail:
	default:
		return fmt.Errorf("%w: on_corrupt %q", ErrInvalidStoragePolicy, cfg.Storage.Items.OnCorrupt)
	}

	switch cfg.Storage.Items.WritePolicy {
	case WriteBestEffort, WriteStrict:
	default:
		return fmt.Errorf("%w: write_policy %q", ErrInvalidStoragePolicy, cfg.Storage.Items.WritePolicy)
	}

	if cfg.Plaid.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 || cfg.Workers.SyncInterval < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// checkBaseURL rejects an override pointing at the Plaid host of another
// environment, so a sandbox configuration never reaches production. Hosts
// outside plaid.com (local test servers, proxies) are accepted as is.
func (p Plaid) checkBaseURL() error {
	if p.BaseURL == "" {
		return nil
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPlaidBaseURL, p.BaseURL)
	}

	host := strings.ToLower(u.Hostname())
	if host != "plaid.com" && !strings.HasSuffix(host, ".plaid.com") {
		return nil
	}
	if host != p.Environment+".plaid.com" {
		return fmt.Errorf("%w: %s does not serve the %s environment", ErrInvalidPlaidBaseURL, host, p.Environment)
	}
	return nil
}

// Validate reports ErrMissingPlaidCredentials when either the client id or
// the secret is empty.
func (p Plaid) Validate() error {
	if p.ClientID == "" || p.Secret == "" {
		return ErrMissingPlaidCredentials
	}
	return nil
}
