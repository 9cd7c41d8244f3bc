// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Webhook types and codes handled by the link server.
const (
	WebhookTypeTransactions = "TRANSACTIONS"
	WebhookTypeItem         = "ITEM"

	WebhookCodeSyncUpdatesAvailable  = "SYNC_UPDATES_AVAILABLE"
	WebhookCodeItemError             = "ERROR"
	WebhookCodePendingExpiration     = "PENDING_EXPIRATION"
	WebhookCodeUserPermissionRevoked = "USER_PERMISSION_REVOKED"
	WebhookCodeLoginRepaired         = "LOGIN_REPAIRED"
)

// Webhook is the common envelope of provider webhooks.
type Webhook struct {
	WebhookType string         `json:"webhook_type"`
	WebhookCode string         `json:"webhook_code"`
	ItemID      string         `json:"item_id"`
	Error       *ProviderError `json:"error,omitempty"`
	Environment string         `json:"environment,omitempty"`
}

// ExchangeRequest is posted by the Link page once the user finished linking.
type ExchangeRequest struct {
	PublicToken string `json:"public_token"`
	UserID      string `json:"user_id,omitempty"`
}

// LinkedItem is the public view of an item returned to HTTP clients. It never
// carries the access token.
type LinkedItem struct {
	ItemID          string     `json:"item_id"`
	InstitutionID   string     `json:"institution_id,omitempty"`
	InstitutionName string     `json:"institution_name,omitempty"`
	Status          ItemStatus `json:"status"`
}

// PublicView strips secrets from it.
func (it Item) PublicView() LinkedItem {
	return LinkedItem{
		ItemID:          it.ItemID,
		InstitutionID:   it.InstitutionID,
		InstitutionName: it.InstitutionName,
		Status:          it.Status,
	}
}
