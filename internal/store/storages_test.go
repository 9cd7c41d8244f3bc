// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/boasync/boa-sync/internal/config"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemsOnly(t *testing.T) {
	cfg := config.Storage{Items: config.Items{
		File:        filepath.Join(t.TempDir(), "items.json"),
		OnCorrupt:   config.CorruptDiscard,
		WritePolicy: config.WriteBestEffort,
	}}

	s, err := NewItemsOnly(cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.Items)
	assert.Nil(t, s.Ledger)
	assert.Nil(t, s.DB())
	assert.NoError(t, s.Close())
}

func TestNewStorages_BadDSN(t *testing.T) {
	cfg := config.Storage{
		Items: config.Items{File: filepath.Join(t.TempDir(), "items.json")},
		DB:    config.DB{DSN: "mysql://localhost/ledger"},
	}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
