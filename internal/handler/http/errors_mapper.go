// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/internal/service"
	"github.com/boasync/boa-sync/internal/store"
	"github.com/boasync/boa-sync/internal/utils"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order; provider sentinels come before the
// HTTP-class ones because a *adapter.PlaidError matches both.
var errorStatuses = []errorStatus{
	{service.ErrEmptyPublicToken, http.StatusBadRequest},
	{service.ErrItemNeedsAttention, http.StatusConflict},
	{store.ErrItemNotFound, http.StatusNotFound},
	{store.ErrAccessTokenImmutable, http.StatusConflict},
	{store.ErrDuplicateAccessToken, http.StatusConflict},
	{store.ErrPersistItems, http.StatusInternalServerError},

	{adapter.ErrInvalidPublicToken, http.StatusBadRequest},
	{adapter.ErrItemLoginRequired, http.StatusConflict},
	{adapter.ErrSandboxOnly, http.StatusBadRequest},
	{adapter.ErrRateLimitExceeded, http.StatusTooManyRequests},
	{adapter.ErrInstitutionDown, http.StatusServiceUnavailable},

	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrServiceUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the mapped status. Server-side failures never leak
// their message; they carry the trace id instead so the log entry can be
// found.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	msg := http.StatusText(status)
	if status < http.StatusInternalServerError {
		msg = err.Error()
	} else if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok {
		msg += " (trace id " + traceID + ")"
	}
	http.Error(w, msg, status)
}
