// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/internal/validators"
	"github.com/boasync/boa-sync/models"
)

type reconcileService struct {
	items     store.ItemStore
	ledger    store.LedgerRepository
	validator validators.Validator

	logger *logger.Logger
}

// NewReconcileService constructs a [ReconcileService].
func NewReconcileService(items store.ItemStore, ledger store.LedgerRepository, log *logger.Logger) ReconcileService {
	return &reconcileService{
		items:     items,
		ledger:    ledger,
		validator: validators.NewRequestValidator(),
		logger:    log,
	}
}

func (s *reconcileService) Reconcile(ctx context.Context, itemID string, statement models.Statement, opts models.ReconcileOptions) (models.ReconcileReport, error) {
	report := models.ReconcileReport{ItemID: itemID}

	if s.ledger == nil {
		return report, ErrLedgerNotAvailable
	}
	if err := s.validator.Validate(ctx, statement); err != nil {
		return report, fmt.Errorf("%w: %w", ErrInvalidStatement, err)
	}
	if _, ok := s.items.GetItem(ctx, itemID); !ok {
		return report, fmt.Errorf("%w: %s", store.ErrItemNotFound, itemID)
	}

	tolerance := max(opts.ToleranceDays, 0)

	filter := models.TransactionFilter{
		ItemID: itemID,
		From:   models.DateOf(statement.PeriodStart.AddDate(0, 0, -tolerance)),
		To:     models.DateOf(statement.PeriodEnd.AddDate(0, 0, tolerance)),
	}

	if statement.AccountLastFour != "" {
		accountIDs, err := s.accountsForMask(ctx, itemID, statement.AccountLastFour)
		if err != nil {
			return report, err
		}
		filter.AccountIDs = accountIDs
		report.AccountIDs = accountIDs
	}

	txs, err := s.ledger.ListTransactions(ctx, filter)
	if err != nil {
		return report, fmt.Errorf("list synced transactions: %w", err)
	}

	candidates := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Pending && !opts.IncludePending {
			continue
		}
		candidates = append(candidates, tx)
	}

	match(statement, candidates, tolerance, &report)

	s.logger.Info().
		Str("func", "reconcileService.Reconcile").
		Str("item_id", itemID).
		Int("matched", len(report.Matched)).
		Int("statement_only", len(report.StatementOnly)).
		Int("provider_only", len(report.ProviderOnly)).
		Str("unmatched_amount", report.UnmatchedAmount.StringFixed(2)).
		Msg("reconciliation finished")
	return report, nil
}

func (s *reconcileService) accountsForMask(ctx context.Context, itemID, lastFour string) ([]string, error) {
	accounts, err := s.ledger.ListAccounts(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list synced accounts: %w", err)
	}

	var ids []string
	for _, acc := range accounts {
		if acc.Mask == lastFour {
			ids = append(ids, acc.AccountID)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: mask %s", ErrNoMatchingAccount, lastFour)
	}
	return ids, nil
}

// statementAmount converts a provider amount to statement sign convention:
// the provider reports outflows as positive numbers.
func statementAmount(tx models.Transaction) decimal.Decimal {
	return tx.Amount.Neg()
}

type candidatePair struct {
	statement int
	provider  int
	delta     int
}

// match pairs statement lines with provider transactions one to one. Pairs
// need equal amounts and dates at most tolerance days apart; the closest
// dates are paired first.
func match(st models.Statement, txs []models.Transaction, tolerance int, report *models.ReconcileReport) {
	var pairs []candidatePair
	for i, line := range st.Transactions {
		for j, tx := range txs {
			if !line.Amount.Equal(statementAmount(tx)) {
				continue
			}
			delta := line.Date.DaysBetween(tx.Date)
			if delta > tolerance {
				continue
			}
			pairs = append(pairs, candidatePair{statement: i, provider: j, delta: delta})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].delta != pairs[b].delta {
			return pairs[a].delta < pairs[b].delta
		}
		if pairs[a].statement != pairs[b].statement {
			return pairs[a].statement < pairs[b].statement
		}
		return pairs[a].provider < pairs[b].provider
	})

	usedStatement := make([]bool, len(st.Transactions))
	usedProvider := make([]bool, len(txs))
	matchedAt := make(map[int]models.ReconcileMatch, len(st.Transactions))

	for _, p := range pairs {
		if usedStatement[p.statement] || usedProvider[p.provider] {
			continue
		}
		usedStatement[p.statement] = true
		usedProvider[p.provider] = true
		matchedAt[p.statement] = models.ReconcileMatch{
			Statement: st.Transactions[p.statement],
			Provider:  txs[p.provider],
			DayDelta:  p.delta,
		}
	}

	report.Matched = make([]models.ReconcileMatch, 0, len(matchedAt))
	report.StatementOnly = make([]models.StatementTransaction, 0)
	report.ProviderOnly = make([]models.Transaction, 0)
	report.StatementTotal = decimal.Zero
	report.ProviderTotal = decimal.Zero

	for i, line := range st.Transactions {
		report.StatementTotal = report.StatementTotal.Add(line.Amount)
		if m, ok := matchedAt[i]; ok {
			report.Matched = append(report.Matched, m)
			continue
		}
		report.StatementOnly = append(report.StatementOnly, line)
	}

	for j, tx := range txs {
		// candidates from the tolerance margin only count once they matched
		inPeriod := inRange(tx.Date, st.PeriodStart, st.PeriodEnd)
		if usedProvider[j] || inPeriod {
			report.ProviderTotal = report.ProviderTotal.Add(statementAmount(tx))
		}
		if !usedProvider[j] && inPeriod {
			report.ProviderOnly = append(report.ProviderOnly, tx)
		}
	}

	report.UnmatchedAmount = report.StatementTotal.Sub(report.ProviderTotal)
}

func inRange(d, from, to models.Date) bool {
	return !d.Before(from.Time) && !d.After(to.Time)
}
