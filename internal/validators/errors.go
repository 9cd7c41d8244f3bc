// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPublicToken = errors.New("invalid public token")
	ErrInvalidUserID      = errors.New("invalid user ID")

	ErrEmptyWebhookType = errors.New("webhook type is required")
	ErrEmptyWebhookCode = errors.New("webhook code is required")

	ErrInvalidPeriod      = errors.New("statement period is invalid")
	ErrInvalidAccountMask = errors.New("account last four must be four digits")
	ErrInvalidLine        = errors.New("statement line is invalid")
)
