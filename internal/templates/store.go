// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/license/internal/license"
)

// Placeholder tokens replaced by Render.
const (
	AuthorToken = "{author}"
	YearToken   = "{year}"
)

const ext = ".txt"

//go:embed files/*.txt
var embedded embed.FS

// Store maps a license kind to its template text. It is immutable once
// loaded.
type Store struct {
	Source string
	kinds  []string
	texts  map[string]string
}

// Load reads every <kind>.txt at the root of fsys. Subdirectories and other
// files are ignored.
func Load(fsys fs.FS, source string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates from %s: %w", source, err)
	}

	s := &Store{Source: source, texts: map[string]string{}}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ext {
			continue
		}
		kind := strings.TrimSuffix(e.Name(), ext)
		if kind == "" {
			continue
		}
		b, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", e.Name(), err)
		}
		s.kinds = append(s.kinds, kind)
		s.texts[kind] = string(b)
	}

	if len(s.kinds) == 0 {
		return nil, fmt.Errorf("no %s templates found in %s", ext, source)
	}

	sort.Strings(s.kinds)
	log.Debugf("loaded %d templates from %s: %v", len(s.kinds), source, s.kinds)
	return s, nil
}

// LoadDir loads templates from a directory on disk.
func LoadDir(dir string) (*Store, error) {
	return Load(os.DirFS(dir), dir)
}

// Embedded returns the templates compiled into the binary.
func Embedded() *Store {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(err)
	}
	s, err := Load(sub, "embedded")
	if err != nil {
		panic(err)
	}
	return s
}

// Open loads dir if it exists and falls back to the embedded templates when
// dir is empty or missing. Any other failure reading dir is returned.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return Embedded(), nil
	}
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("template dir %s not found, using embedded templates", dir)
			return Embedded(), nil
		}
		return nil, fmt.Errorf("failed to stat template dir %s: %w", dir, err)
	}
	return LoadDir(dir)
}

// Kinds returns the sorted kind identifiers. The slice is a copy.
func (s *Store) Kinds() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.kinds...)
}

// Has reports whether kind names a loaded template.
func (s *Store) Has(kind string) bool {
	if s == nil {
		return false
	}
	_, ok := s.texts[kind]
	return ok
}

// Fetch returns the raw template text for kind.
func (s *Store) Fetch(kind string) (string, error) {
	if kind == "" || !s.Has(kind) {
		return "", &license.Error{Kind: license.InvalidKind, Field: "kind", Value: kind}
	}
	return s.texts[kind], nil
}

// Title returns the first non-blank line of the template for kind.
func (s *Store) Title(kind string) string {
	text, err := s.Fetch(kind)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return ""
}

// Size returns the length in bytes of the template for kind.
func (s *Store) Size(kind string) int {
	text, _ := s.Fetch(kind)
	return len(text)
}

// Render substitutes author and year for every occurrence of their tokens.
func Render(text, author, year string) string {
	return strings.NewReplacer(AuthorToken, author, YearToken, year).Replace(text)
}
