// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/store"
)

type Services struct {
	ItemService      ItemService
	SyncService      SyncService
	SyncJob          SyncJob
	ReconcileService ReconcileService
	WebhookService   WebhookService
}

func NewServices(storages *store.Storages, gateway adapter.PlaidGateway, logger *logger.Logger) *Services {
	syncService := NewSyncService(storages.Items, storages.Ledger, gateway, logger)
	syncJob := NewSyncJob(syncService, logger)

	return &Services{
		ItemService:      NewItemService(storages.Items, storages.Ledger, gateway, logger),
		SyncService:      syncService,
		SyncJob:          syncJob,
		ReconcileService: NewReconcileService(storages.Items, storages.Ledger, logger),
		WebhookService:   NewWebhookService(storages.Items, syncJob, logger),
	}
}
