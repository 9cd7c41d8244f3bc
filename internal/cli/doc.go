// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the boa-sync command line on top of
// google/subcommands.
//
// Global flags (config file, items file, ledger DSN, Plaid environment, log
// level, server address) come before the command name; every command has its
// own flags after it:
//
//	boa-sync [global flags] <command> [command flags] [args]
//
// Exit status is 0 on success, 1 on failure and 2 on a usage error. Report
// output goes to stdout; logs go to stderr. Access tokens are masked in
// every report.
package cli
