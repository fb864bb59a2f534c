// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package license holds the error taxonomy shared by every stage of license
// resolution and the pure validators for author, year, and kind inputs.
package license
