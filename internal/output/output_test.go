// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/staranto/license/internal/resolver"
)

var testResolution = resolver.Resolution{
	Author: "Bat Man",
	Year:   "2016",
	Kind:   "mit",
	Text:   "MIT License\n\nCopyright (c) 2016 Bat Man\n",
}

func TestSpit_Text(t *testing.T) {
	for _, format := range []string{"", "text"} {
		var buf bytes.Buffer
		assert.NoError(t, Spit(&buf, format, testResolution))
		assert.Equal(t, testResolution.Text, buf.String())
	}

	var buf bytes.Buffer
	assert.NoError(t, Spit(&buf, "text", resolver.Resolution{Text: "no newline"}))
	assert.Equal(t, "no newline", buf.String())
}

func TestSpit_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, "json", testResolution))

	var got resolver.Resolution
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testResolution, got)
	assert.Contains(t, buf.String(), `"author": "Bat Man"`)
}

func TestSpit_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, "yaml", testResolution))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "mit", got["kind"])
	assert.Equal(t, "2016", got["year"])
	assert.Equal(t, testResolution.Text, got["text"])
}

func TestSpit_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(&buf, "xml", testResolution)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

type fakeLister map[string]string

func (f fakeLister) Kinds() []string          { return []string{"bsd3", "mit"} }
func (f fakeLister) Title(kind string) string { return f[kind] }
func (f fakeLister) Size(kind string) int     { return 1500 }

func TestKindsTable(t *testing.T) {
	l := fakeLister{"bsd3": "BSD 3-Clause License", "mit": "MIT License"}

	var buf bytes.Buffer
	require.NoError(t, KindsTable(&buf, l, true, ""))
	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "BSD 3-Clause License")
	assert.Contains(t, out, "mit")
	assert.Contains(t, out, "1.5 kB")

	buf.Reset()
	require.NoError(t, KindsTable(&buf, l, false, ""))
	assert.NotContains(t, buf.String(), "KIND")
	assert.Contains(t, buf.String(), "MIT License")

	buf.Reset()
	require.NoError(t, KindsTable(&buf, l, true, "kind^bsd"))
	assert.Contains(t, buf.String(), "bsd3")
	assert.NotContains(t, buf.String(), "MIT License")

	buf.Reset()
	require.NoError(t, KindsTable(&buf, l, true, "kind=gpl"))
	assert.Empty(t, buf.String())

	assert.Error(t, KindsTable(&buf, l, true, "author=Bat"))
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("cache miss for kind"), false)
	assert.Equal(t, "Error: cache miss for kind\n", buf.String())

	buf.Reset()
	Error(&buf, errors.New("cache miss for kind"), true)
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "cache miss for kind")
}

func TestColorDefault(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	// A regular file is never a terminal.
	assert.False(t, ColorDefault(f))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorDefault(os.Stderr))
}
