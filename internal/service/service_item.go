// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/internal/utils"
	"github.com/boasync/boa-sync/models"
)

type itemService struct {
	items   store.ItemStore
	ledger  store.LedgerRepository
	gateway adapter.PlaidGateway
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewItemService constructs an [ItemService]. ledger may be nil, in which case
// Remove leaves ledger rows alone.
func NewItemService(items store.ItemStore, ledger store.LedgerRepository, gateway adapter.PlaidGateway, log *logger.Logger) ItemService {
	return &itemService{
		items:   items,
		ledger:  ledger,
		gateway: gateway,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
}

func (s *itemService) CreateLinkToken(ctx context.Context, userID string, products []string) (models.LinkToken, error) {
	if strings.TrimSpace(userID) == "" {
		userID = s.ids.Generate()
	}
	return s.gateway.CreateLinkToken(ctx, models.LinkTokenRequest{UserID: userID, Products: products})
}

func (s *itemService) CreateUpdateLinkToken(ctx context.Context, itemID string) (models.LinkToken, error) {
	item, err := s.lookup(ctx, itemID)
	if err != nil {
		return models.LinkToken{}, err
	}

	userID := item.UserID
	if userID == "" {
		userID = item.ItemID
	}
	return s.gateway.CreateUpdateLinkToken(ctx, userID, item.AccessToken)
}

func (s *itemService) Link(ctx context.Context, publicToken, userID string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(publicToken) == "" {
		return models.Item{}, ErrEmptyPublicToken
	}

	exchange, err := s.gateway.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return models.Item{}, fmt.Errorf("exchange public token: %w", err)
	}

	item, err := s.items.SaveItem(ctx, models.Item{
		ItemID:      exchange.ItemID,
		AccessToken: exchange.AccessToken,
		UserID:      userID,
		Status:      models.ItemStatusActive,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("func", "itemService.Link").
			Str("item_id", exchange.ItemID).
			Str("access_token", utils.MaskSecret(exchange.AccessToken)).
			Msg("item linked at provider but could not be stored")
		return models.Item{}, fmt.Errorf("store linked item %s: %w", exchange.ItemID, err)
	}

	enriched, err := s.fillInstitution(ctx, item)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "itemService.Link").
			Str("item_id", item.ItemID).
			Msg("could not resolve institution for new item")
		return item, nil
	}

	s.logger.Info().
		Str("func", "itemService.Link").
		Str("item_id", enriched.ItemID).
		Str("institution", enriched.InstitutionName).
		Msg("item linked")
	return enriched, nil
}

func (s *itemService) fillInstitution(ctx context.Context, item models.Item) (models.Item, error) {
	details, err := s.gateway.GetItem(ctx, item.AccessToken)
	if err != nil {
		return item, err
	}
	if details.InstitutionID == nil || *details.InstitutionID == "" {
		return item, nil
	}

	update := models.ItemUpdate{InstitutionID: details.InstitutionID}
	if inst, instErr := s.gateway.GetInstitution(ctx, *details.InstitutionID, nil); instErr == nil {
		update.InstitutionName = &inst.Name
	} else {
		logger.FromContext(ctx).Warn().Err(instErr).
			Str("func", "itemService.fillInstitution").
			Str("institution_id", *details.InstitutionID).
			Msg("institution lookup failed")
	}

	return s.items.UpdateItem(ctx, item.ItemID, update)
}

func (s *itemService) SandboxLink(ctx context.Context, institutionID string, products []string, userID string) (models.Item, error) {
	token, err := s.gateway.CreateSandboxPublicToken(ctx, institutionID, products)
	if err != nil {
		return models.Item{}, fmt.Errorf("create sandbox public token: %w", err)
	}
	return s.Link(ctx, token.PublicToken, userID)
}

func (s *itemService) Status(ctx context.Context, itemID string) (models.ItemStatusReport, error) {
	item, err := s.lookup(ctx, itemID)
	if err != nil {
		return models.ItemStatusReport{}, err
	}
	report := models.ItemStatusReport{Item: item}

	// a pending removal is only undone by Remove itself
	keep := item.Status == models.ItemStatusPendingRemoval

	details, err := s.gateway.GetItem(ctx, item.AccessToken)
	if err != nil {
		if status, ok := statusForError(err); ok && !keep {
			report.Item, report.Changed = s.setStatus(ctx, item, status)
		}
		return report, fmt.Errorf("get item %s: %w", itemID, err)
	}
	report.Provider = details

	if !keep {
		report.Item, report.Changed = s.setStatus(ctx, item, statusForProviderError(details.Error))
	}
	return report, nil
}

func (s *itemService) setStatus(ctx context.Context, item models.Item, status models.ItemStatus) (models.Item, bool) {
	if item.Status == status {
		return item, false
	}

	updated, err := s.items.UpdateStatus(ctx, item.ItemID, status)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "itemService.setStatus").
			Str("item_id", item.ItemID).
			Str("status", string(status)).
			Msg("could not persist item status")
		item.Status = status
		return item, true
	}

	s.logger.Info().
		Str("item_id", item.ItemID).
		Str("from", string(item.Status)).
		Str("to", string(status)).
		Msg("item status changed")
	return updated, true
}

func (s *itemService) Remove(ctx context.Context, itemID string) error {
	item, err := s.lookup(ctx, itemID)
	if err != nil {
		return err
	}

	if item.Status != models.ItemStatusPendingRemoval {
		if _, err = s.items.UpdateStatus(ctx, itemID, models.ItemStatusPendingRemoval); err != nil {
			return fmt.Errorf("mark item %s for removal: %w", itemID, err)
		}
	}

	if _, err = s.gateway.RemoveItem(ctx, item.AccessToken); err != nil {
		// the provider already forgot the item; finish locally
		if !errors.Is(err, adapter.ErrInvalidAccessToken) && !errors.Is(err, adapter.ErrProviderItemNotFound) {
			return fmt.Errorf("remove item %s at provider: %w", itemID, err)
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "itemService.Remove").
			Str("item_id", itemID).
			Msg("provider no longer knows the item, removing locally")
	}

	if s.ledger != nil {
		if err = s.ledger.PurgeItem(ctx, itemID); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "itemService.Remove").
				Str("item_id", itemID).
				Msg("could not purge ledger rows of removed item")
		}
	}

	if err = s.items.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete item %s: %w", itemID, err)
	}

	s.logger.Info().Str("func", "itemService.Remove").Str("item_id", itemID).Msg("item removed")
	return nil
}

func (s *itemService) List(ctx context.Context, userID string) []models.Item {
	if userID == "" {
		return s.items.GetAllItems(ctx)
	}
	return s.items.GetItemsByUserID(ctx, userID)
}

func (s *itemService) lookup(ctx context.Context, itemID string) (models.Item, error) {
	item, ok := s.items.GetItem(ctx, itemID)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", store.ErrItemNotFound, itemID)
	}
	return item, nil
}
