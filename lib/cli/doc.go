// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the pieces shared by the wirefmt command-line tools:
// a structured diagnostic logger, categorized errors, and exit status
// mapping.
//
// Tool diagnostics go to stderr through log/slog. The decoded log
// records a tool prints are its output and go to stdout; they never pass
// through this logger.
package cli
