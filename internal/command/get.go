// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/license/internal/license"
	"github.com/staranto/license/internal/output"
	"github.com/staranto/license/internal/resolver"
)

// GetCommandAction resolves the license from the flags, filling gaps from the
// cache, and writes it to the root command's Writer.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if cmd.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", cmd.Args().Slice())
	}

	req := resolver.Request{
		Author: cmd.String("author"),
		Year:   cmd.String("year"),
		Kind:   cmd.String("kind"),
	}
	log.Debugf("request: %+v", req)

	// The resolver treats a missing year as a caller bug, so an explicit
	// -y "" is rejected here as bad input.
	if req.Year == "" {
		return license.ValidateYear(req.Year)
	}

	res, err := resolver.New(m.Cache, m.Store).Resolve(req)
	if err != nil {
		return err
	}

	return output.Spit(cmd.Root().Writer, cmd.String("output"), res)
}
