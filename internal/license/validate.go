// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package license

import (
	"regexp"
	"strings"
)

var (
	authorRe = regexp.MustCompile(`^[A-Za-z]+([ -][A-Za-z]+)*$`)
	yearRe   = regexp.MustCompile(`^[0-9]{4}$`)
)

// KindSet is the closed set of license kinds a kind is validated against.
// templates.Store satisfies it.
type KindSet interface {
	Has(kind string) bool
}

// Validate checks all three inputs and returns the first failure, in the
// order author, year, kind. Callers that need every failure should call the
// individual validators.
func Validate(author, year, kind string, kinds KindSet) error {
	if err := ValidateAuthor(author); err != nil {
		return err
	}
	if err := ValidateYear(year); err != nil {
		return err
	}
	return ValidateKind(kind, kinds)
}

// ValidateAuthor accepts letters, with word groups joined by a single space
// or hyphen.
func ValidateAuthor(author string) error {
	if !authorRe.MatchString(author) {
		return &Error{Kind: InvalidAuthor, Field: "author", Value: author}
	}
	return nil
}

// ValidateYear accepts exactly four ASCII digits.
func ValidateYear(year string) error {
	if !yearRe.MatchString(year) {
		return &Error{Kind: InvalidYear, Field: "year", Value: year}
	}
	return nil
}

// ValidateKind requires a non-empty, lower-case member of kinds. A nil set
// accepts nothing.
func ValidateKind(kind string, kinds KindSet) error {
	if kind == "" || kind != strings.ToLower(kind) || kinds == nil || !kinds.Has(kind) {
		return &Error{Kind: InvalidKind, Field: "kind", Value: kind}
	}
	return nil
}
