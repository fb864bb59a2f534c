// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/license/internal/meta"
	"github.com/staranto/license/internal/output"
)

func KindsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	return output.KindsTable(cmd.Root().Writer, m.Store, cmd.Bool("titles"), cmd.String("filter"))
}

func KindsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "kinds",
		Usage:     "list the available license kinds",
		UsageText: "license kinds [--no-titles] [-f filter]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma-separated filters on kind, title, or size (e.g. kind^bsd,size>1000)",
			},
			&cli.BoolWithInverseFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show column titles",
				Value:   true,
			},
		},
		Action: KindsCommandAction,
	}
}
