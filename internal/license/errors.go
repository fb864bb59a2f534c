// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package license

import (
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	InvalidAuthor Kind = iota + 1
	InvalidYear
	InvalidKind
	CacheUnavailable
	CacheMiss
	CacheWriteError
)

func (k Kind) String() string {
	switch k {
	case InvalidAuthor:
		return "InvalidAuthor"
	case InvalidYear:
		return "InvalidYear"
	case InvalidKind:
		return "InvalidKind"
	case CacheUnavailable:
		return "CacheUnavailable"
	case CacheMiss:
		return "CacheMiss"
	case CacheWriteError:
		return "CacheWriteError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Matching is by Kind only, so
// errors.Is(err, ErrCacheMiss) holds for a miss on any field.
var (
	ErrInvalidAuthor    = &Error{Kind: InvalidAuthor}
	ErrInvalidYear      = &Error{Kind: InvalidYear}
	ErrInvalidKind      = &Error{Kind: InvalidKind}
	ErrCacheUnavailable = &Error{Kind: CacheUnavailable}
	ErrCacheMiss        = &Error{Kind: CacheMiss}
	ErrCacheWriteError  = &Error{Kind: CacheWriteError}
)

// Error is the single error type returned for user-facing failures. Field
// names the input involved (author, year, kind), Value is the offending
// input, and Err is the underlying cause, if any.
type Error struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

// Error renders a message suitable for printing straight to the user.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidAuthor:
		return fmt.Sprintf("invalid author: %q. Must be letters, optionally joined by single spaces or hyphens", e.Value)
	case InvalidYear:
		return fmt.Sprintf("invalid year: %q. Must be exactly four digits", e.Value)
	case InvalidKind:
		return fmt.Sprintf("invalid kind: %q. Must be one of the available license kinds", e.Value)
	case CacheUnavailable:
		return fmt.Sprintf("no usable cache found, you must supply all arguments: %v", e.Err)
	case CacheMiss:
		return fmt.Sprintf("cache miss for %s. You must supply the %s with the %s switch", e.Field, e.Field, switchFor(e.Field))
	case CacheWriteError:
		return fmt.Sprintf("failed to write cache: %v", e.Err)
	default:
		return fmt.Sprintf("license error (%s)", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func switchFor(field string) string {
	switch field {
	case "author":
		return "-a"
	case "year":
		return "-y"
	case "kind":
		return "-k"
	}
	return "--" + field
}
