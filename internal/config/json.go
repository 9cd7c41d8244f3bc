// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with snake_case keys and string durations.
//
//	{
//	  "plaid": {"client_id": "...", "env": "sandbox", "products": ["transactions"]},
//	  "storage": {"items": {"file": "~/.plaid-items.json"}, "db": {"dsn": "postgres://..."}},
//	  "server": {"http_address": "127.0.0.1:8484"},
//	  "workers": {"sync_interval": "6h"},
//	  "log_level": "debug"
//	}
type jsonConfig struct {
	Plaid struct {
		ClientID       string   `json:"client_id"`
		Secret         string   `json:"secret"`
		Environment    string   `json:"env"`
		BaseURL        string   `json:"base_url"`
		ClientName     string   `json:"client_name"`
		WebhookURL     string   `json:"webhook_url"`
		RedirectURI    string   `json:"redirect_uri"`
		Products       []string `json:"products"`
		CountryCodes   []string `json:"country_codes"`
		Language       string   `json:"language"`
		RequestTimeout Duration `json:"request_timeout"`
		VerifyWebhooks bool     `json:"verify_webhooks"`
	} `json:"plaid"`

	Storage struct {
		Items struct {
			File        string `json:"file"`
			OnCorrupt   string `json:"on_corrupt"`
			WritePolicy string `json:"write_policy"`
		} `json:"items"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers"`

	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(expandHome(jsonFilePath))
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Plaid: Plaid{
			ClientID:       jsonCfg.Plaid.ClientID,
			Secret:         jsonCfg.Plaid.Secret,
			Environment:    jsonCfg.Plaid.Environment,
			BaseURL:        jsonCfg.Plaid.BaseURL,
			ClientName:     jsonCfg.Plaid.ClientName,
			WebhookURL:     jsonCfg.Plaid.WebhookURL,
			RedirectURI:    jsonCfg.Plaid.RedirectURI,
			Products:       jsonCfg.Plaid.Products,
			CountryCodes:   jsonCfg.Plaid.CountryCodes,
			Language:       jsonCfg.Plaid.Language,
			RequestTimeout: time.Duration(jsonCfg.Plaid.RequestTimeout),
			VerifyWebhooks: jsonCfg.Plaid.VerifyWebhooks,
		},
		Storage: Storage{
			Items: Items{
				File:        jsonCfg.Storage.Items.File,
				OnCorrupt:   CorruptPolicy(jsonCfg.Storage.Items.OnCorrupt),
				WritePolicy: WritePolicy(jsonCfg.Storage.Items.WritePolicy),
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		LogLevel: jsonCfg.LogLevel,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
