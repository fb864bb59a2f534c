// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// license is the main package for the license command line tool. It fills a
// license template with an author and year, remembering the last author and
// kind between runs.
package main
