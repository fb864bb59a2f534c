// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package templates is the read-only store of license templates. The set of
// valid kinds is whatever <kind>.txt assets the store was loaded from.
package templates
