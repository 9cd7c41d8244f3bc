// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived parts of `boa-sync serve` side by side
// and stops all of them when one fails or the context is cancelled.
package workers

import "context"

// Worker is a long-running unit of the serve process. Run blocks until ctx
// is cancelled or the worker fails.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
