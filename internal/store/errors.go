// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [ItemStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned by mutating calls that target an item id
	// which is not in the store.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItem is returned when an item lacks its id or access token.
	ErrInvalidItem = errors.New("item must have an id and an access token")

	// ErrInvalidStatus is returned for a status outside [models.ItemStatus].
	ErrInvalidStatus = errors.New("invalid item status")

	// ErrAccessTokenImmutable is returned when SaveItem would change the
	// access token of an existing item. Remove the item and link it again.
	ErrAccessTokenImmutable = errors.New("access token of an existing item cannot change")

	// ErrDuplicateAccessToken is returned when SaveItem would give a second
	// item an access token that is already stored.
	ErrDuplicateAccessToken = errors.New("access token already belongs to another item")

	// ErrEmptyCursor is returned by UpdateSyncCursor for an empty cursor. Use
	// ResetSyncCursor to start over.
	ErrEmptyCursor = errors.New("sync cursor must not be empty")

	// ErrCorruptItemsFile is returned when the items file cannot be read or
	// decoded and the corrupt policy is "fail".
	ErrCorruptItemsFile = errors.New("items file is corrupt")

	// ErrPersistItems is returned when the items file cannot be written and
	// the write policy is "strict".
	ErrPersistItems = errors.New("items file could not be written")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned when a DSN is neither a postgres URL nor
	// a usable SQLite path.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
