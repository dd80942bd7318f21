// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

func newREPLCommand(app *App) *cobra.Command {
	var watchFiles bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Run commands read line by line from stdin",
		Long: `Run commands read line by line from stdin.

Each line is matched against the command tree and executed. Errors are
printed and the loop continues. The loop ends at end of input or when a line
equals the exit word (repl.exit_word, default "exit"). The prompt is only
shown when stdin is a terminal.

With --watch the command tree is rebuilt whenever a command file in the
working directory or the local config.cue changes. A reload that fails keeps
the previous commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			live := newLiveSession(s)
			if watchFiles {
				stop, err := app.startReload(cmd.Context(), live)
				if err != nil {
					return err
				}
				defer stop()
			}
			return app.repl(cmd.Context(), live)
		},
	}
	cmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "reload commands when command files change")
	return cmd
}

// repl executes stdin line by line until the exit word or end of input.
func (a *App) repl(ctx context.Context, live *liveSession) error {
	interactive := isTerminal(a.stdin)
	scanner := bufio.NewScanner(a.stdin)

	for {
		if interactive {
			fmt.Fprint(a.stdout, live.Load().cfg.REPL.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		s := live.Load()
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == s.cfg.REPL.ExitWord {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		s.logger.Debug("repl input", "input", line)
		a.reportREPLError(s.executor.Execute(ctx, line, nil))

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// reportREPLError prints a failed line's error without ending the loop.
func (a *App) reportREPLError(err error) {
	if err == nil {
		return
	}

	var notFound *cmdtree.CommandNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Command not found"))
		fmt.Fprintf(a.stderr, "Usage: %s\n", strings.TrimSpace(notFound.Usage()))
		return
	}
	fmt.Fprintln(a.stderr, ErrorStyle.Render(err.Error()))
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
