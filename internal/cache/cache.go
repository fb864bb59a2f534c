// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/natefinch/atomic"

	"github.com/staranto/license/internal/license"
)

const (
	AuthorKey = "author"
	KindKey   = "kind"
)

// Field is the outcome of looking up a single key.
type Field struct {
	Value string
	Found bool
}

// Record is the parsed content of the cache file.
type Record map[string]string

// Lookup returns the value for key. An empty value counts as missing.
func (r Record) Lookup(key string) Field {
	v, ok := r[key]
	if !ok || v == "" {
		return Field{}
	}
	return Field{Value: v, Found: true}
}

// Cache is the on-disk record of the last successful resolution.
type Cache struct {
	path string
}

// New returns a Cache backed by the file at path. Nothing is touched until
// Read or Write.
func New(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) Path() string {
	return c.path
}

// Load parses the whole cache file into a Record. Each line is split on its
// first "="; lines without one are skipped and the first occurrence of a key
// wins. Values are taken literally.
func (c *Cache) Load() (Record, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, &license.Error{Kind: license.CacheUnavailable, Err: err}
	}
	return parse(string(b)), nil
}

func parse(text string) Record {
	rec := Record{}
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, seen := rec[key]; !seen {
			rec[key] = strings.TrimSpace(value)
		}
	}
	return rec
}

// Read fills in whichever of author and kind is empty from the cache file.
// When both are given the file is not read at all. A field that is still
// missing after the lookup is a CacheMiss; author is checked first.
func (c *Cache) Read(author, kind string) (string, string, error) {
	if author != "" && kind != "" {
		return author, kind, nil
	}

	rec, err := c.Load()
	if err != nil {
		return "", "", err
	}

	if author == "" {
		if author, err = fill(rec, AuthorKey); err != nil {
			return "", "", err
		}
	}
	if kind == "" {
		if kind, err = fill(rec, KindKey); err != nil {
			return "", "", err
		}
	}

	return author, kind, nil
}

func fill(rec Record, key string) (string, error) {
	f := rec.Lookup(key)
	if !f.Found {
		log.WithField("field", key).Info("cache miss")
		return "", &license.Error{Kind: license.CacheMiss, Field: key}
	}
	log.WithField("field", key).WithField("value", f.Value).Info("cache hit")
	return f.Value, nil
}

// Write replaces the cache file with the given author and kind. Both are
// required.
func (c *Cache) Write(author, kind string) error {
	if author == "" || kind == "" {
		panic("cache: Write requires both author and kind")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil { //nolint:mnd
		return &license.Error{Kind: license.CacheWriteError, Err: fmt.Errorf("failed to create cache directory: %w", err)}
	}

	content := fmt.Sprintf("%s=%s\n%s=%s", AuthorKey, author, KindKey, kind)
	if err := atomic.WriteFile(c.path, strings.NewReader(content)); err != nil {
		return &license.Error{Kind: license.CacheWriteError, Err: err}
	}

	log.Debugf("wrote cache %s", c.path)
	return nil
}
