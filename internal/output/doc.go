// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders resolutions, kind listings, and error messages in
// the formats the CLI offers.
package output
