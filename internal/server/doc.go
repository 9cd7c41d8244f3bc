// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the link/webhook HTTP server and shuts it down
// gracefully once its context is cancelled.
package server
