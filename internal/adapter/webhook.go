// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"sync"
	"time"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/utils"
)

// MaxWebhookAge is how old a webhook signature may be before it is rejected.
const MaxWebhookAge = 5 * time.Minute

// WebhookVerifier checks the Plaid-Verification header of inbound webhooks.
// Verification keys are fetched once per key id and cached.
type WebhookVerifier struct {
	gateway PlaidGateway
	now     func() time.Time

	mu   sync.Mutex
	keys map[string]*ecdsa.PublicKey

	logger *logger.Logger
}

// NewWebhookVerifier constructs a [WebhookVerifier] that fetches keys through
// gateway.
func NewWebhookVerifier(gateway PlaidGateway, log *logger.Logger) *WebhookVerifier {
	return &WebhookVerifier{
		gateway: gateway,
		now:     time.Now,
		keys:    make(map[string]*ecdsa.PublicKey),
		logger:  log,
	}
}

// Verify checks that signedJWT was issued by the provider within
// [MaxWebhookAge] and that it covers exactly body.
func (v *WebhookVerifier) Verify(ctx context.Context, body []byte, signedJWT string) error {
	if signedJWT == "" {
		return fmt.Errorf("%w: missing Plaid-Verification header", ErrInvalidWebhook)
	}

	kid, err := utils.JWTKeyID(signedJWT)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
	}

	key, err := v.key(ctx, kid)
	if err != nil {
		return err
	}

	claims, err := utils.VerifyES256(signedJWT, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
	}

	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return fmt.Errorf("%w: missing iat", ErrInvalidWebhook)
	}
	if v.now().Sub(iat.Time) > MaxWebhookAge {
		return fmt.Errorf("%w: signature issued at %s is too old", ErrInvalidWebhook, iat.Time.UTC().Format(time.RFC3339))
	}

	claimed, _ := claims["request_body_sha256"].(string)
	if !utils.EqualHex(claimed, utils.SHA256Hex(body)) {
		return fmt.Errorf("%w: body hash mismatch", ErrInvalidWebhook)
	}

	return nil
}

func (v *WebhookVerifier) key(ctx context.Context, kid string) (*ecdsa.PublicKey, error) {
	v.mu.Lock()
	key, ok := v.keys[kid]
	v.mu.Unlock()
	if ok {
		return key, nil
	}

	jwk, err := v.gateway.GetWebhookVerificationKey(ctx, kid)
	if err != nil {
		return nil, fmt.Errorf("error fetching webhook verification key: %w", err)
	}
	if jwk.ExpiredAt != nil {
		return nil, fmt.Errorf("%w: key %s expired", ErrInvalidWebhook, kid)
	}
	if jwk.Crv != "P-256" || jwk.Kty != "EC" {
		return nil, fmt.Errorf("%w: unsupported key %s/%s", ErrInvalidWebhook, jwk.Kty, jwk.Crv)
	}

	key, err = utils.ParseP256PublicKey(jwk.X, jwk.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
	}

	v.mu.Lock()
	v.keys[kid] = key
	v.mu.Unlock()

	v.logger.Debug().Str("func", "WebhookVerifier.key").Str("kid", kid).Msg("webhook verification key cached")
	return key, nil
}
