// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	errTooManyArgs      = errors.New("too many arguments")
	errSyncFailed       = errors.New("some items failed to sync")
	errRemovalCancelled = errors.New("removal cancelled")
)
