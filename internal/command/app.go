// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/license/internal/cache"
	"github.com/staranto/license/internal/config"
	"github.com/staranto/license/internal/license"
	"github.com/staranto/license/internal/meta"
	"github.com/staranto/license/internal/output"
	"github.com/staranto/license/internal/templates"
	"github.com/staranto/license/internal/version"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	if err := config.LoadEnv(); err != nil {
		log.Warnf("%v", err)
	}

	// A missing config file is normal. Everything has a default.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
	}

	store, err := templates.Open(TemplatesDir(cfg))
	if err != nil {
		return nil, err
	}
	log.Debugf("templates from %s: %v", store.Source, store.Kinds())

	configured, _ := cfg.GetString("cache", "")
	cachePath, ok := cache.Path(configured)
	if !ok {
		return nil, errors.New("unable to resolve a cache location, set LICENSE_CACHE")
	}

	meta := meta.Meta{
		Args:   args,
		Config: cfg,
		Store:  store,
		Cache:  cache.New(cachePath),
	}

	app := &cli.Command{
		Name:      "license",
		Usage:     "License file fetcher",
		UsageText: "license [-a author] [-y year] [-k kind]",
		Version:   version.Version,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewRootFlags(cfg, store),
		Action: GetCommandAction,
		// Report prints usage errors like any other, without the help dump.
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
	}

	app.Commands = append(app.Commands,
		KindsCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// TemplatesDir picks the template directory.
// Precedence:
//  1. LICENSE_TEMPLATES, if set and non-empty
//  2. the "templates" config key
//  3. <executable dir>/../share/license/files
//
// A directory that does not exist makes templates.Open use the embedded set.
func TemplatesDir(cfg config.Type) string {
	if d, ok := os.LookupEnv("LICENSE_TEMPLATES"); ok && d != "" {
		return d
	}
	if d, _ := cfg.GetString("templates", ""); d != "" {
		return d
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "..", "share", "license", "files")
}

// Report prints err and returns the process exit code: 1 for license errors
// and 2 for everything else.
func Report(app *cli.Command, w io.Writer, err error) int {
	color := false
	if app != nil {
		color = app.Bool("color")
	}
	output.Error(w, err, color)

	var le *license.Error
	if errors.As(err, &le) {
		return 1
	}
	return 2
}

// GetMeta returns the meta.Meta stored in the command's Metadata, falling
// back to the root command. If missing it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	if root := cmd.Root(); root != nil && root != cmd {
		return GetMeta(root)
	}
	return meta.Meta{}
}
