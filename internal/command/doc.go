// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI for license. It wires flags, validators,
// actions, and shell completion around the resolver.
package command
