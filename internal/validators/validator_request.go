// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/boasync/boa-sync/models"
)

const (
	FieldPublicToken     = "public_token"
	FieldUserID          = "user_id"
	FieldWebhookType     = "webhook_type"
	FieldWebhookCode     = "webhook_code"
	FieldPeriod          = "period"
	FieldAccountLastFour = "account_last_four"
	FieldTransactions    = "transactions"
)

const maxUserIDLength = 128

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExchangeRequest:
		return v.validateExchangeRequest(ctx, value, fields...)
	case *models.ExchangeRequest:
		return v.validateExchangeRequest(ctx, *value, fields...)

	case models.Webhook:
		return v.validateWebhook(ctx, value, fields...)
	case *models.Webhook:
		return v.validateWebhook(ctx, *value, fields...)

	case models.Statement:
		return v.validateStatement(ctx, value, fields...)
	case *models.Statement:
		return v.validateStatement(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateExchangeRequest(_ context.Context, req models.ExchangeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicToken, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldPublicToken:
			if strings.TrimSpace(req.PublicToken) == "" || strings.ContainsAny(req.PublicToken, " \t\n") {
				return ErrInvalidPublicToken
			}
		case FieldUserID:
			if len(req.UserID) > maxUserIDLength {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateWebhook(_ context.Context, hook models.Webhook, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWebhookType, FieldWebhookCode}
	}

	for _, f := range fields {
		switch f {
		case FieldWebhookType:
			if hook.WebhookType == "" {
				return ErrEmptyWebhookType
			}
		case FieldWebhookCode:
			if hook.WebhookCode == "" {
				return ErrEmptyWebhookCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateStatement(_ context.Context, st models.Statement, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPeriod, FieldAccountLastFour, FieldTransactions}
	}

	for _, f := range fields {
		switch f {
		case FieldPeriod:
			if st.PeriodStart.IsZero() || st.PeriodEnd.IsZero() {
				return fmt.Errorf("%w: start and end are required", ErrInvalidPeriod)
			}
			if st.PeriodEnd.Before(st.PeriodStart.Time) {
				return fmt.Errorf("%w: ends before it starts", ErrInvalidPeriod)
			}
		case FieldAccountLastFour:
			if st.AccountLastFour != "" && !isLastFour(st.AccountLastFour) {
				return ErrInvalidAccountMask
			}
		case FieldTransactions:
			for i, line := range st.Transactions {
				if line.Date.IsZero() {
					return fmt.Errorf("%w: line %d has no date", ErrInvalidLine, i+1)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isLastFour(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
