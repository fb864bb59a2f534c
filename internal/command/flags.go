// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"strconv"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/license/internal/config"
	"github.com/staranto/license/internal/license"
	"github.com/staranto/license/internal/output"
	"github.com/staranto/license/internal/templates"
)

// now is swapped in tests.
var now = time.Now

// NewRootFlags constructs the flags of the root command. Author and kind
// fall back to env and the config file before the cache is consulted.
func NewRootFlags(cfg config.Type, store *templates.Store) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "the name of the author",
			Sources: ConfigValueSourceChain(cfg, "author", "LICENSE_AUTHOR"),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "year",
			Aliases: []string{"y"},
			Usage:   "the year the program was created in",
			Value:   strconv.Itoa(now().Year()),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "the kind of license to fetch",
			Sources: ConfigValueSourceChain(cfg, "kind", "LICENSE_KIND"),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, KindValidator(store))
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored error output",
			Sources: ConfigValueSourceChain(cfg, "color", "LICENSE_COLOR"),
			Value:   output.ColorDefault(os.Stderr),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: ConfigValueSourceChain(cfg, "output", "LICENSE_OUTPUT"),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}
}

// ConfigValueSourceChain builds a source chain of the given env variables
// followed by key in the config file, when there is one.
func ConfigValueSourceChain(cfg config.Type, key string, envs ...string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain()
	for _, e := range envs {
		chain.Chain = append(chain.Chain, cli.EnvVar(e))
	}
	if cfg.Source != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(cfg.Source)))
	}
	return chain
}

// KindValidator checks a kind flag against the loaded templates.
func KindValidator(store *templates.Store) FlagValidatorType {
	return func(value any) error {
		return license.ValidateKind(value.(string), store)
	}
}
