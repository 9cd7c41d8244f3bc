// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/models"
	"github.com/shopspring/decimal"
)

// ledgerRepository is the SQL implementation of [LedgerRepository]. It
// works against Postgres and SQLite alike; only the placeholder format
// differs between the two.
type ledgerRepository struct {
	*DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [LedgerRepository] on top of db.
func NewLedgerRepository(db *DB, log *logger.Logger) LedgerRepository {
	return &ledgerRepository{
		DB:     db,
		logger: log,
	}
}

// UpsertAccounts inserts accounts or refreshes their names and balances.
func (l *ledgerRepository) UpsertAccounts(ctx context.Context, itemID string, accounts []models.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertAccountsQuery(l.placeholder(), itemID, accounts)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.UpsertAccounts").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = l.withRetry(ctx, "ledgerRepository.UpsertAccounts", func() error {
		_, execErr := l.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.UpsertAccounts").
			Str("item_id", itemID).
			Str("pg_code", postgresErrorCode(err)).
			Int("accounts", len(accounts)).
			Msg("failed to upsert accounts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListAccounts returns the accounts of itemID ordered by name.
func (l *ledgerRepository) ListAccounts(ctx context.Context, itemID string) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(l.placeholder(), itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.ListAccounts").
			Str("item_id", itemID).
			Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 8)
	for rows.Next() {
		var (
			a                  models.Account
			available, current decimal.NullDecimal
		)
		if err = rows.Scan(
			&a.AccountID,
			&a.ItemID,
			&a.Name,
			&a.OfficialName,
			&a.Mask,
			&a.Type,
			&a.Subtype,
			&available,
			&current,
			&a.Balances.ISOCurrencyCode,
		); err != nil {
			log.Err(err).Str("func", "ledgerRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		a.Balances.Available = decimalPtr(available)
		a.Balances.Current = decimalPtr(current)
		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "ledgerRepository.ListAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// UpsertTransactions inserts txs or overwrites the stored copy. A transaction
// that comes back after removal is revived.
func (l *ledgerRepository) UpsertTransactions(ctx context.Context, itemID string, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	batches := chunk(txs, upsertBatchSize)
	queries := make([]string, 0, len(batches))
	queryArgs := make([][]any, 0, len(batches))
	for _, batch := range batches {
		query, args, err := buildUpsertTransactionsQuery(l.placeholder(), itemID, batch)
		if err != nil {
			log.Err(err).Str("func", "ledgerRepository.UpsertTransactions").Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		queries = append(queries, query)
		queryArgs = append(queryArgs, args)
	}

	err := l.withRetry(ctx, "ledgerRepository.UpsertTransactions", func() error {
		return l.inTx(ctx, func(tx *sql.Tx) error {
			for i, query := range queries {
				if _, execErr := tx.ExecContext(ctx, query, queryArgs[i]...); execErr != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
				}
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.UpsertTransactions").
			Str("item_id", itemID).
			Str("pg_code", postgresErrorCode(err)).
			Int("transactions", len(txs)).
			Msg("failed to upsert transactions")
		return err
	}

	return nil
}

// MarkTransactionsRemoved flags transactions the provider retracted. The rows
// stay for audit and are hidden from listings by default.
func (l *ledgerRepository) MarkTransactionsRemoved(ctx context.Context, itemID string, transactionIDs []string) error {
	if len(transactionIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildMarkTransactionsRemovedQuery(l.placeholder(), itemID, transactionIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = l.withRetry(ctx, "ledgerRepository.MarkTransactionsRemoved", func() error {
		_, execErr := l.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.MarkTransactionsRemoved").
			Str("item_id", itemID).
			Int("transactions", len(transactionIDs)).
			Msg("failed to mark transactions removed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteItemTransactions drops every transaction of itemID ahead of a full
// resync.
func (l *ledgerRepository) DeleteItemTransactions(ctx context.Context, itemID string) error {
	return l.deleteItemRows(ctx, "ledgerRepository.DeleteItemTransactions", itemID, transactionsTable)
}

// PurgeItem drops transactions and accounts of an item that was removed.
func (l *ledgerRepository) PurgeItem(ctx context.Context, itemID string) error {
	return l.deleteItemRows(ctx, "ledgerRepository.PurgeItem", itemID, transactionsTable, accountsTable)
}

func (l *ledgerRepository) deleteItemRows(ctx context.Context, op, itemID string, tables ...string) error {
	log := logger.FromContext(ctx)

	queries := make([]string, 0, len(tables))
	queryArgs := make([][]any, 0, len(tables))
	for _, table := range tables {
		query, args, err := buildDeleteItemRowsQuery(l.placeholder(), table, itemID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		queries = append(queries, query)
		queryArgs = append(queryArgs, args)
	}

	err := l.withRetry(ctx, op, func() error {
		return l.inTx(ctx, func(tx *sql.Tx) error {
			for i, query := range queries {
				if _, execErr := tx.ExecContext(ctx, query, queryArgs[i]...); execErr != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
				}
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", op).Str("item_id", itemID).Msg("failed to delete item rows")
		return err
	}

	return nil
}

// ListTransactions returns transactions matching filter ordered by posting
// date.
func (l *ledgerRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(l.placeholder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.ListTransactions").
			Str("item_id", filter.ItemID).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0, 64)
	for rows.Next() {
		var (
			t                 models.Transaction
			authorized        models.Date
			primary, detailed string
		)
		if err = rows.Scan(
			&t.TransactionID,
			&t.ItemID,
			&t.AccountID,
			&t.Amount,
			&t.ISOCurrencyCode,
			&t.Date,
			&authorized,
			&t.Name,
			&t.MerchantName,
			&t.Pending,
			&primary,
			&detailed,
			&t.Removed,
		); err != nil {
			log.Err(err).Str("func", "ledgerRepository.ListTransactions").Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if !authorized.IsZero() {
			t.AuthorizedDate = &authorized
		}
		if primary != "" || detailed != "" {
			t.PersonalFinanceCategory = &models.PersonalFinanceCategory{Primary: primary, Detailed: detailed}
		}
		txs = append(txs, t)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "ledgerRepository.ListTransactions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return txs, nil
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func dateArg(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.String()
}
