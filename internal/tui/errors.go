// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the user leaves a prompt with ctrl+c.
	ErrUserQuit = errors.New("quit by user")

	// ErrNoItems is returned by [PickItem] when there is nothing to choose from.
	ErrNoItems = errors.New("no linked items")
)
