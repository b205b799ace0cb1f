// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads configuration for the wirefmt tools.
//
// Configuration is loaded from a single file specified by either the
// WIREFMT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]); [Resolve] picks between them for the tools and
// falls back to [Default] only when neither is given. Values a file
// omits keep the defaults from [Default].
//
// Files ending in .json or .jsonc are parsed as JSON with comments and
// trailing commas allowed; anything else is parsed as YAML. Both use
// the same field names.
//
// ${HOME} and ${VAR:-default} patterns in path fields are expanded after
// loading.
package config
