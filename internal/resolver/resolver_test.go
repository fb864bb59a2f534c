// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package resolver

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/license/internal/cache"
	"github.com/staranto/license/internal/license"
	"github.com/staranto/license/internal/templates"
)

const mitTemplate = "MIT License\n\nCopyright (c) {year} {author}\n"

type fixture struct {
	resolver  *Resolver
	cachePath string
}

func setup(t *testing.T) fixture {
	t.Helper()

	store, err := templates.Load(fstest.MapFS{
		"mit.txt": {Data: []byte(mitTemplate)},
		"isc.txt": {Data: []byte("ISC {author} {year}")},
	}, "test")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), cache.FileName)
	return fixture{
		resolver:  New(cache.New(path), store),
		cachePath: path,
	}
}

func readCache(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestGet_EndToEnd(t *testing.T) {
	f := setup(t)

	text, err := f.resolver.Get(Request{Author: "Bat Man", Year: "2016", Kind: "mit"})
	require.NoError(t, err)

	assert.Equal(t, "MIT License\n\nCopyright (c) 2016 Bat Man\n", text)
	assert.Equal(t, "author=Bat Man\nkind=mit", readCache(t, f.cachePath))
}

func TestGet_FillsFromCache(t *testing.T) {
	f := setup(t)
	require.NoError(t, os.WriteFile(f.cachePath, []byte("author=Foo Bar\nkind=isc"), 0o600))

	res, err := f.resolver.Resolve(Request{Year: "2020"})
	require.NoError(t, err)

	assert.Equal(t, Resolution{Author: "Foo Bar", Year: "2020", Kind: "isc", Text: "ISC Foo Bar 2020"}, res)
}

func TestGet_IsIdempotent(t *testing.T) {
	f := setup(t)
	req := Request{Author: "Bat Man", Year: "2016", Kind: "mit"}

	first, err := f.resolver.Get(req)
	require.NoError(t, err)
	second, err := f.resolver.Get(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "author=Bat Man\nkind=mit", readCache(t, f.cachePath))
}

func TestGet_MissingYearPanicsBeforeAnyLookup(t *testing.T) {
	f := setup(t)

	assert.Panics(t, func() {
		_, _ = f.resolver.Get(Request{Author: "Bat Man", Kind: "mit"})
	})

	_, err := os.Stat(f.cachePath)
	assert.True(t, os.IsNotExist(err), "cache must not be written")
}

func TestGet_Failures(t *testing.T) {
	tests := []struct {
		name    string
		cached  string
		req     Request
		wantErr error
	}{
		{
			name:    "no cache and missing author",
			req:     Request{Year: "2016", Kind: "mit"},
			wantErr: license.ErrCacheUnavailable,
		},
		{
			name:    "kind not in cache",
			cached:  "author=Foo Bar",
			req:     Request{Year: "2016"},
			wantErr: license.ErrCacheMiss,
		},
		{
			name:    "invalid author",
			req:     Request{Author: "B4t M4n", Year: "2016", Kind: "mit"},
			wantErr: license.ErrInvalidAuthor,
		},
		{
			name:    "invalid year",
			req:     Request{Author: "Bat Man", Year: "16", Kind: "mit"},
			wantErr: license.ErrInvalidYear,
		},
		{
			name:    "unknown kind",
			req:     Request{Author: "Bat Man", Year: "2016", Kind: "gpl"},
			wantErr: license.ErrInvalidKind,
		},
		{
			name:    "upper-case kind",
			req:     Request{Author: "Bat Man", Year: "2016", Kind: "MIT"},
			wantErr: license.ErrInvalidKind,
		},
		{
			name:    "cached author is invalid",
			cached:  "author=R2 D2\nkind=mit",
			req:     Request{Year: "2016"},
			wantErr: license.ErrInvalidAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			if tt.cached != "" {
				require.NoError(t, os.WriteFile(f.cachePath, []byte(tt.cached), 0o600))
			}

			text, err := f.resolver.Get(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, text)

			// Failures never touch the cache.
			b, readErr := os.ReadFile(f.cachePath)
			if tt.cached == "" {
				assert.True(t, os.IsNotExist(readErr))
			} else {
				assert.Equal(t, tt.cached, string(b))
			}
		})
	}
}

func TestGet_CacheWriteFailure(t *testing.T) {
	store, err := templates.Load(fstest.MapFS{"mit.txt": {Data: []byte(mitTemplate)}}, "test")
	require.NoError(t, err)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	r := New(cache.New(filepath.Join(blocker, cache.FileName)), store)
	text, err := r.Get(Request{Author: "Bat Man", Year: "2016", Kind: "mit"})
	assert.ErrorIs(t, err, license.ErrCacheWriteError)
	assert.Empty(t, text)
}
