// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/models"
)

type webhookService struct {
	items store.ItemStore
	job   SyncJob

	logger *logger.Logger
}

// NewWebhookService constructs a [WebhookService]. Sync updates are handed to
// job; a nil job ignores them.
func NewWebhookService(items store.ItemStore, job SyncJob, log *logger.Logger) WebhookService {
	return &webhookService{items: items, job: job, logger: log}
}

func (s *webhookService) HandleWebhook(ctx context.Context, hook models.Webhook) error {
	log := logger.FromContext(ctx)

	item, ok := s.items.GetItem(ctx, hook.ItemID)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrItemNotFound, hook.ItemID)
	}

	switch hook.WebhookType + "/" + hook.WebhookCode {
	case models.WebhookTypeTransactions + "/" + models.WebhookCodeSyncUpdatesAvailable:
		if !item.Status.Syncable() || s.job == nil {
			log.Debug().Str("item_id", item.ItemID).Str("status", string(item.Status)).Msg("sync update ignored")
			return nil
		}
		if !s.job.Trigger(item.ItemID) {
			log.Warn().Str("item_id", item.ItemID).Msg("sync queue is full, update dropped until next periodic run")
		}
		return nil

	case models.WebhookTypeItem + "/" + models.WebhookCodeItemError:
		return s.setStatus(ctx, item, statusForProviderError(hook.Error))

	case models.WebhookTypeItem + "/" + models.WebhookCodeUserPermissionRevoked:
		return s.setStatus(ctx, item, models.ItemStatusRequiresReauth)

	case models.WebhookTypeItem + "/" + models.WebhookCodeLoginRepaired:
		return s.setStatus(ctx, item, models.ItemStatusActive)

	case models.WebhookTypeItem + "/" + models.WebhookCodePendingExpiration:
		s.logger.Warn().
			Str("func", "webhookService.HandleWebhook").
			Str("item_id", item.ItemID).
			Msg("item consent expires soon, run link in update mode")
		return nil
	}

	log.Debug().
		Str("webhook_type", hook.WebhookType).
		Str("webhook_code", hook.WebhookCode).
		Msg("webhook ignored")
	return nil
}

func (s *webhookService) setStatus(ctx context.Context, item models.Item, status models.ItemStatus) error {
	if item.Status == status || item.Status == models.ItemStatusPendingRemoval {
		return nil
	}
	if _, err := s.items.UpdateStatus(ctx, item.ItemID, status); err != nil {
		return fmt.Errorf("update status of %s: %w", item.ItemID, err)
	}

	s.logger.Info().
		Str("func", "webhookService.setStatus").
		Str("item_id", item.ItemID).
		Str("from", string(item.Status)).
		Str("to", string(status)).
		Msg("item status changed by webhook")
	return nil
}
