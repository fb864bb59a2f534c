// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"os"
	"path/filepath"
)

// FileName is the cache file created in the user's home directory.
const FileName = ".license"

// Path resolves the cache file location.
// Precedence:
//  1. LICENSE_CACHE, if set and non-empty
//  2. configured, if non-empty
//  3. $HOME/.license
//
// Returns ("", false) if no location can be resolved.
func Path(configured string) (string, bool) {
	if c, ok := os.LookupEnv("LICENSE_CACHE"); ok && c != "" {
		return c, true
	}
	if configured != "" {
		return configured, true
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, FileName), true
	}
	return "", false
}
