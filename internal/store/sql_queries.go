// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/boasync/boa-sync/models"
)

const (
	accountsTable     = "plaid_accounts"
	transactionsTable = "plaid_transactions"

	// keeps a multi-row insert well below SQLite's bound-variable limit
	upsertBatchSize = 50
)

var accountColumns = []string{
	"account_id",
	"item_id",
	"name",
	"official_name",
	"mask",
	"type",
	"subtype",
	"available_balance",
	"current_balance",
	"iso_currency_code",
}

var transactionColumns = []string{
	"transaction_id",
	"item_id",
	"account_id",
	"amount",
	"iso_currency_code",
	"posted_on",
	"authorized_on",
	"name",
	"merchant_name",
	"pending",
	"category_primary",
	"category_detailed",
	"removed",
}

// upsertSuffix renders ON CONFLICT ... DO UPDATE for every column except the
// key. Both Postgres and SQLite accept this form.
func upsertSuffix(key string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == key {
			continue
		}
		sets = append(sets, c+" = excluded."+c)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	return "ON CONFLICT (" + key + ") DO UPDATE SET " + strings.Join(sets, ", ")
}

func buildUpsertAccountsQuery(format sq.PlaceholderFormat, itemID string, accounts []models.Account) (string, []any, error) {
	q := sq.Insert(accountsTable).
		Columns(accountColumns...).
		PlaceholderFormat(format)

	for _, a := range accounts {
		q = q.Values(
			a.AccountID,
			itemID,
			a.Name,
			a.OfficialName,
			a.Mask,
			a.Type,
			a.Subtype,
			decimalArg(a.Balances.Available),
			decimalArg(a.Balances.Current),
			a.Balances.ISOCurrencyCode,
		)
	}

	return q.Suffix(upsertSuffix("account_id", accountColumns)).ToSql()
}

func buildListAccountsQuery(format sq.PlaceholderFormat, itemID string) (string, []any, error) {
	return sq.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("name", "account_id").
		PlaceholderFormat(format).
		ToSql()
}

func buildUpsertTransactionsQuery(format sq.PlaceholderFormat, itemID string, txs []models.Transaction) (string, []any, error) {
	q := sq.Insert(transactionsTable).
		Columns(transactionColumns...).
		PlaceholderFormat(format)

	for _, t := range txs {
		var primary, detailed string
		if t.PersonalFinanceCategory != nil {
			primary = t.PersonalFinanceCategory.Primary
			detailed = t.PersonalFinanceCategory.Detailed
		}
		q = q.Values(
			t.TransactionID,
			itemID,
			t.AccountID,
			t.Amount.String(),
			t.ISOCurrencyCode,
			t.Date.String(),
			dateArg(t.AuthorizedDate),
			t.Name,
			t.MerchantName,
			t.Pending,
			primary,
			detailed,
			false,
		)
	}

	return q.Suffix(upsertSuffix("transaction_id", transactionColumns)).ToSql()
}

func buildMarkTransactionsRemovedQuery(format sq.PlaceholderFormat, itemID string, ids []string) (string, []any, error) {
	return sq.Update(transactionsTable).
		Set("removed", true).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"item_id": itemID, "transaction_id": ids}).
		PlaceholderFormat(format).
		ToSql()
}

func buildDeleteItemRowsQuery(format sq.PlaceholderFormat, table, itemID string) (string, []any, error) {
	return sq.Delete(table).
		Where(sq.Eq{"item_id": itemID}).
		PlaceholderFormat(format).
		ToSql()
}

func buildListTransactionsQuery(format sq.PlaceholderFormat, filter models.TransactionFilter) (string, []any, error) {
	q := sq.Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("posted_on", "transaction_id").
		PlaceholderFormat(format)

	if filter.ItemID != "" {
		q = q.Where(sq.Eq{"item_id": filter.ItemID})
	}
	if len(filter.AccountIDs) > 0 {
		q = q.Where(sq.Eq{"account_id": filter.AccountIDs})
	}
	if !filter.From.IsZero() {
		q = q.Where(sq.GtOrEq{"posted_on": filter.From.String()})
	}
	if !filter.To.IsZero() {
		q = q.Where(sq.LtOrEq{"posted_on": filter.To.String()})
	}
	if !filter.IncludeRemoved {
		q = q.Where(sq.Eq{"removed": false})
	}

	return q.ToSql()
}

func chunk[T any](s []T, size int) [][]T {
	var out [][]T
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	if len(s) > 0 {
		out = append(out, s)
	}
	return out
}
