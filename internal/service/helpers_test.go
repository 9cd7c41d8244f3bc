// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/models"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func testItem(id string, status models.ItemStatus) models.Item {
	return models.Item{
		ItemID:      id,
		AccessToken: "access-sandbox-" + id,
		UserID:      "user-1",
		Status:      status,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}

func plaidError(errType, code string) error {
	return &adapter.PlaidError{
		StatusCode: 400,
		ProviderError: models.ProviderError{
			ErrorType:    errType,
			ErrorCode:    code,
			ErrorMessage: "test failure",
		},
	}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}
