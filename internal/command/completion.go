package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/license/internal/meta"
	"github.com/staranto/license/internal/output"
)

// Replaced in the scripts below. Kinds come from the loaded templates, so
// completion follows whatever template directory is in use.
const (
	kindsPlaceholder   = "@KINDS@"
	formatsPlaceholder = "@FORMATS@"
)

const bashCompletionScript = `# bash completion for license
_license()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    case "$prev" in
        -k|--kind)
            COMPREPLY=( $(compgen -W "@KINDS@" -- "$cur") )
            return 0
            ;;
        -o|--output)
            COMPREPLY=( $(compgen -W "@FORMATS@" -- "$cur") )
            return 0
            ;;
        -a|--author|-y|--year)
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "kinds completion" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "--author -a --year -y --kind -k --color -c --no-color --output -o --help -h --version -v" -- "$cur") )
    return 0
}

complete -F _license license
`

const zshCompletionScript = `#compdef license

_license() {
  local -a cmds
  cmds=(
    'kinds:list the available license kinds'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then
    _describe -t commands 'license commands' cmds
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    kinds)
      _arguments \
        '(-f --filter)'{-f,--filter}'[filters on kind, title, or size]:filter' \
        '(-t --titles --no-titles)'{-t,--titles,--no-titles}'[show column titles]'
      ;;
    *)
      _arguments \
        '(-a --author)'{-a,--author}'[the name of the author]:author' \
        '(-y --year)'{-y,--year}'[the year the program was created in]:year' \
        '(-k --kind)'{-k,--kind}'[the kind of license to fetch]:kind:(@KINDS@)' \
        '(-c --color --no-color)'{-c,--color,--no-color}'[enable colored error output]' \
        '(-o --output)'{-o,--output}'[output format]:format:(@FORMATS@)'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _license license
`

// CompletionScript returns the completion script for shell with the kind
// and format lists filled in. ok is false for an unsupported shell.
func CompletionScript(shell string, kinds []string) (script string, ok bool) {
	switch shell {
	case "bash":
		script = bashCompletionScript
	case "zsh":
		script = zshCompletionScript
	default:
		return "", false
	}
	r := strings.NewReplacer(
		kindsPlaceholder, strings.Join(kinds, " "),
		formatsPlaceholder, strings.Join(output.Formats, " "),
	)
	return r.Replace(script), true
}

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	script, ok := CompletionScript(shell, GetMeta(cmd).Store.Kinds())
	if !ok {
		return fmt.Errorf("usage: license completion [bash|zsh]")
	}
	fmt.Fprint(cmd.Root().Writer, script)
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "license completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
