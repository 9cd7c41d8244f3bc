// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/boasync/boa-sync/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type webhookFixture struct {
	key      *ecdsa.PrivateKey
	verifier *WebhookVerifier
	fetches  *atomic.Int32
	now      time.Time
}

func newWebhookFixture(t *testing.T, expired bool) *webhookFixture {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	x := make([]byte, 32)
	y := make([]byte, 32)
	key.PublicKey.X.FillBytes(x)
	key.PublicKey.Y.FillBytes(y)

	expiredAt := "null"
	if expired {
		expiredAt = "1700000000"
	}
	fetches := &atomic.Int32{}
	response := fmt.Sprintf(`{"key":{"alg":"ES256","crv":"P-256","kid":"kid-1","kty":"EC","use":"sig","x":%q,"y":%q,"created_at":1560466143,"expired_at":%s}}`,
		base64.RawURLEncoding.EncodeToString(x), base64.RawURLEncoding.EncodeToString(y), expiredAt)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		assert.Equal(t, "/webhook_verification_key/get", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	v := NewWebhookVerifier(newTestGateway(t, testPlaidConfig(srv.URL)), logger.Nop())
	v.now = func() time.Time { return now }

	return &webhookFixture{key: key, verifier: v, fetches: fetches, now: now}
}

func (f *webhookFixture) sign(t *testing.T, body []byte, issuedAt time.Time) string {
	t.Helper()
	sum := sha256.Sum256(body)
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iat":                 issuedAt.Unix(),
		"request_body_sha256": hex.EncodeToString(sum[:]),
	})
	token.Header["kid"] = "kid-1"
	s, err := token.SignedString(f.key)
	require.NoError(t, err)
	return s
}

func TestWebhookVerifier_Valid(t *testing.T) {
	f := newWebhookFixture(t, false)
	body := []byte(`{"webhook_type":"TRANSACTIONS","webhook_code":"SYNC_UPDATES_AVAILABLE","item_id":"item-1"}`)

	require.NoError(t, f.verifier.Verify(context.Background(), body, f.sign(t, body, f.now.Add(-time.Minute))))
	require.NoError(t, f.verifier.Verify(context.Background(), body, f.sign(t, body, f.now)))
	assert.Equal(t, int32(1), f.fetches.Load(), "key must be cached")
}

func TestWebhookVerifier_Rejects(t *testing.T) {
	f := newWebhookFixture(t, false)
	body := []byte(`{"item_id":"item-1"}`)

	tests := []struct {
		name  string
		body  []byte
		token string
	}{
		{name: "missing header", body: body, token: ""},
		{name: "garbage token", body: body, token: "not-a-jwt"},
		{name: "stale signature", body: body, token: f.sign(t, body, f.now.Add(-MaxWebhookAge-time.Second))},
		{name: "tampered body", body: []byte(`{"item_id":"item-2"}`), token: f.sign(t, body, f.now)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.verifier.Verify(context.Background(), tt.body, tt.token)
			assert.ErrorIs(t, err, ErrInvalidWebhook)
		})
	}
}

func TestWebhookVerifier_WrongSigner(t *testing.T) {
	f := newWebhookFixture(t, false)
	other, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	body := []byte(`{}`)

	forged := &webhookFixture{key: other, now: f.now}
	err = f.verifier.Verify(context.Background(), body, forged.sign(t, body, f.now))
	assert.ErrorIs(t, err, ErrInvalidWebhook)
}

func TestWebhookVerifier_ExpiredKey(t *testing.T) {
	f := newWebhookFixture(t, true)
	body := []byte(`{}`)

	err := f.verifier.Verify(context.Background(), body, f.sign(t, body, f.now))
	assert.ErrorIs(t, err, ErrInvalidWebhook)
}
