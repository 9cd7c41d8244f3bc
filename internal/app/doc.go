// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, storage, the Plaid gateway and the
// services into one handle shared by the CLI commands.
//
// Commands declare what they need with [Needs]; a command that only lists
// local items never opens the ledger database or validates Plaid
// credentials.
package app
