// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Statement is an already-parsed bank statement. Debits carry a negative
// amount, credits a positive one.
type Statement struct {
	AccountLastFour string                 `json:"account_last_four,omitempty"`
	PeriodStart     Date                   `json:"period_start"`
	PeriodEnd       Date                   `json:"period_end"`
	Transactions    []StatementTransaction `json:"transactions"`
}

// StatementTransaction is one line of a parsed statement.
type StatementTransaction struct {
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// DefaultToleranceDays is the date tolerance used when none is given.
const DefaultToleranceDays = 3

// ReconcileOptions tunes transaction matching.
type ReconcileOptions struct {
	// ToleranceDays is the largest date gap between a statement line and a
	// provider transaction that still counts as the same movement.
	ToleranceDays int

	// IncludePending also matches provider transactions that are not posted.
	IncludePending bool
}

// ReconcileMatch pairs a statement line with the provider transaction it was
// matched to.
type ReconcileMatch struct {
	Statement StatementTransaction `json:"statement"`
	Provider  Transaction          `json:"provider"`
	DayDelta  int                  `json:"day_delta"`
}

// ReconcileReport is the outcome of cross-referencing a statement with
// provider-synced transactions.
type ReconcileReport struct {
	ItemID          string                 `json:"item_id"`
	AccountIDs      []string               `json:"account_ids,omitempty"`
	Matched         []ReconcileMatch       `json:"matched"`
	StatementOnly   []StatementTransaction `json:"statement_only"`
	ProviderOnly    []Transaction          `json:"provider_only"`
	StatementTotal  decimal.Decimal        `json:"statement_total"`
	ProviderTotal   decimal.Decimal        `json:"provider_total"`
	UnmatchedAmount decimal.Decimal        `json:"unmatched_amount"`
}

// Balanced reports whether every line on both sides found a partner.
func (r ReconcileReport) Balanced() bool {
	return len(r.StatementOnly) == 0 && len(r.ProviderOnly) == 0
}
