// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the link and webhook server started by
// `boa-sync serve`.
//
// It serves the Plaid Link page, accepts the public token produced by Link,
// receives provider webhooks and exposes a health probe. Request tracing and
// access logging are handled by middleware before requests reach the service
// layer.
package http
