// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/logger"
	"github.com/boasync/boa-sync/internal/mock"
	"github.com/boasync/boa-sync/internal/service"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/models"
)

type fakeVerifier struct {
	err       error
	gotBody   []byte
	gotSigned string
}

func (f *fakeVerifier) Verify(_ context.Context, body []byte, signedJWT string) error {
	f.gotBody = body
	f.gotSigned = signedJWT
	return f.err
}

type testServer struct {
	router   http.Handler
	items    *mock.MockItemService
	webhooks *mock.MockWebhookService
}

func newTestServer(t *testing.T, verifier WebhookVerifier) testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	items := mock.NewMockItemService(ctrl)
	webhooks := mock.NewMockWebhookService(ctrl)
	services := &service.Services{ItemService: items, WebhookService: webhooks}

	h := NewHandler(services, verifier, models.NewAppBuildInfo("v1.2.3", "2026-10-18", "abc123"), logger.Nop())
	return testServer{router: h.Init(), items: items, webhooks: webhooks}
}

func (s testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	v := &fakeVerifier{}
	log := logger.Nop()

	h := NewHandler(svc, v, models.AppBuildInfo{}, log)
	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, v, h.verifier)
	assert.Same(t, log, h.logger)
}

// ── simple routes ────────────────────────────────────────────────────────────

func TestRoutes_Healthz(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_Version(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(http.MethodGet, "/api/version", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Build version: v1.2.3")
	assert.Contains(t, rr.Body.String(), "Build commit: abc123")
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/webhooks/plaid"},
		{http.MethodPut, "/api/link/exchange"},
		{http.MethodDelete, "/healthz"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := s.do(tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ── link page and token ─────────────────────────────────────────────────────

func TestLinkPage_RendersToken(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().CreateLinkToken(gomock.Any(), "user-5", gomock.Nil()).
		Return(models.LinkToken{LinkToken: "link-sandbox-abc"}, nil)

	rr := s.do(http.MethodGet, "/?user_id=user-5", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), `"link-sandbox-abc"`)
	assert.Contains(t, rr.Body.String(), "/api/link/exchange")
}

func TestLinkPage_UpdateMode(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().CreateUpdateLinkToken(gomock.Any(), "item-1").
		Return(models.LinkToken{LinkToken: "link-update-1"}, nil)

	rr := s.do(http.MethodGet, "/?item_id=item-1", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Re-authenticate item")
	assert.Contains(t, rr.Body.String(), `"link-update-1"`)
}

func TestLinkPage_UnknownItem(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().CreateUpdateLinkToken(gomock.Any(), "ghost").
		Return(models.LinkToken{}, store.ErrItemNotFound)

	rr := s.do(http.MethodGet, "/?item_id=ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateLinkToken(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().CreateLinkToken(gomock.Any(), "user-1", []string{"transactions"}).
		Return(models.LinkToken{LinkToken: "link-sandbox-1", RequestID: "req-1"}, nil)

	rr := s.do(http.MethodPost, "/api/link/token", `{"user_id":"user-1","products":["transactions"]}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.LinkToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "link-sandbox-1", got.LinkToken)
}

func TestCreateLinkToken_EmptyBody(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().CreateLinkToken(gomock.Any(), "", gomock.Nil()).
		Return(models.LinkToken{LinkToken: "link-sandbox-2"}, nil)

	rr := s.do(http.MethodPost, "/api/link/token", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateLinkToken_ProviderRateLimited(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().CreateLinkToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.LinkToken{}, &adapter.PlaidError{
			StatusCode:    http.StatusTooManyRequests,
			ProviderError: models.ProviderError{ErrorType: "RATE_LIMIT_EXCEEDED", ErrorCode: "RATE_LIMIT"},
		})

	rr := s.do(http.MethodPost, "/api/link/token", `{}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// ── exchange ─────────────────────────────────────────────────────────────────

func TestExchange_Success(t *testing.T) {
	s := newTestServer(t, nil)
	item := models.Item{
		ItemID:          "item-9",
		AccessToken:     "access-sandbox-secret",
		InstitutionName: "Bank of America",
		Status:          models.ItemStatusActive,
	}
	s.items.EXPECT().Link(gomock.Any(), "public-sandbox-1", "user-1").Return(item, nil)

	rr := s.do(http.MethodPost, "/api/link/exchange", `{"public_token":"public-sandbox-1","user_id":"user-1"}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "access-sandbox-secret")

	var got models.LinkedItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, item.PublicView(), got)
}

func TestExchange_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		linkErr    error
		wantStatus int
	}{
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "empty token", body: `{"public_token":""}`, wantStatus: http.StatusBadRequest},
		{name: "service rejects token", body: `{"public_token":"public-1"}`, linkErr: service.ErrEmptyPublicToken, wantStatus: http.StatusBadRequest},
		{
			name: "expired public token",
			body: `{"public_token":"public-old"}`,
			linkErr: &adapter.PlaidError{
				StatusCode:    http.StatusBadRequest,
				ProviderError: models.ProviderError{ErrorType: "INVALID_INPUT", ErrorCode: "INVALID_PUBLIC_TOKEN"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{name: "store failure", body: `{"public_token":"public-1"}`, linkErr: store.ErrPersistItems, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			if tt.linkErr != nil {
				s.items.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Item{}, tt.linkErr)
			}

			rr := s.do(http.MethodPost, "/api/link/exchange", tt.body, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestExchange_ServerErrorCarriesTraceID(t *testing.T) {
	s := newTestServer(t, nil)
	s.items.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Item{}, errors.New("disk full"))

	rr := s.do(http.MethodPost, "/api/link/exchange", `{"public_token":"public-1"}`, map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "trace id trace-42")
	assert.NotContains(t, rr.Body.String(), "disk full")
}

// ── webhooks ─────────────────────────────────────────────────────────────────

const syncWebhook = `{"webhook_type":"TRANSACTIONS","webhook_code":"SYNC_UPDATES_AVAILABLE","item_id":"item-1"}`

func TestWebhook_Unverified(t *testing.T) {
	s := newTestServer(t, nil)
	s.webhooks.EXPECT().HandleWebhook(gomock.Any(), models.Webhook{
		WebhookType: models.WebhookTypeTransactions,
		WebhookCode: models.WebhookCodeSyncUpdatesAvailable,
		ItemID:      "item-1",
	}).Return(nil)

	rr := s.do(http.MethodPost, "/api/webhooks/plaid", syncWebhook, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWebhook_Verified(t *testing.T) {
	v := &fakeVerifier{}
	s := newTestServer(t, v)
	s.webhooks.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(nil)

	rr := s.do(http.MethodPost, "/api/webhooks/plaid", syncWebhook, map[string]string{verificationHeader: "signed.jwt.value"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, syncWebhook, string(v.gotBody))
	assert.Equal(t, "signed.jwt.value", v.gotSigned)
}

func TestWebhook_Rejected(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		s := newTestServer(t, &fakeVerifier{})
		rr := s.do(http.MethodPost, "/api/webhooks/plaid", syncWebhook, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bad signature", func(t *testing.T) {
		s := newTestServer(t, &fakeVerifier{err: adapter.ErrInvalidWebhook})
		rr := s.do(http.MethodPost, "/api/webhooks/plaid", syncWebhook, map[string]string{verificationHeader: "forged"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do(http.MethodPost, "/api/webhooks/plaid", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do(http.MethodPost, "/api/webhooks/plaid", "not json", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing webhook code", func(t *testing.T) {
		s := newTestServer(t, nil)
		rr := s.do(http.MethodPost, "/api/webhooks/plaid", `{"webhook_type":"ITEM","item_id":"item-1"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWebhook_ServiceErrors(t *testing.T) {
	t.Run("unknown item is acknowledged", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.webhooks.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(store.ErrItemNotFound)

		rr := s.do(http.MethodPost, "/api/webhooks/plaid", syncWebhook, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("failure asks for redelivery", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.webhooks.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		rr := s.do(http.MethodPost, "/api/webhooks/plaid", syncWebhook, nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "disk full")
	})
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	loginRequired := &adapter.PlaidError{
		StatusCode:    http.StatusBadRequest,
		ProviderError: models.ProviderError{ErrorType: "ITEM_ERROR", ErrorCode: "ITEM_LOGIN_REQUIRED"},
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "item not found", err: store.ErrItemNotFound, want: http.StatusNotFound},
		{name: "needs attention", err: service.ErrItemNeedsAttention, want: http.StatusConflict},
		{name: "login required wins over bad request", err: loginRequired, want: http.StatusConflict},
		{name: "sandbox only", err: adapter.ErrSandboxOnly, want: http.StatusBadRequest},
		{name: "provider 500", err: adapter.ErrInternalServerError, want: http.StatusBadGateway},
		{name: "unknown", err: errors.New("x"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
