// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache persists the last-used author and kind in a small key=value
// file so later invocations can omit them.
package cache
