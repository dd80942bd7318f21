// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/cmdtree/cmdtree/pkg/cursor"
)

func newDescribeCommand(app *App) *cobra.Command {
	describeCmd := &cobra.Command{
		Use:   "describe <input...>",
		Short: "Show the documentation of a command",
		Long: `Show the documentation of the command an input line resolves to:
its descriptions, usage and required permission, rendered as markdown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			chain, ok := s.executor.Finder().Find(cursor.New(input))
			if !ok {
				return app.executionError(&cmdtree.CommandNotFoundError{Input: input, Chain: chain})
			}

			out, err := glamour.Render(describeMarkdown(chain), app.glamourStyle)
			if err != nil {
				return fmt.Errorf("failed to render description: %w", err)
			}
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}
	describeCmd.Flags().SetInterspersed(false)
	return describeCmd
}

// describeMarkdown documents the final node of chain.
func describeMarkdown(chain *cmdtree.Chain) string {
	node := chain.Final()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", strings.Join(chain.Identifiers(), " "))

	if short := cmdtree.DataString(node, cmdtree.DataShortDescription); short != "" {
		sb.WriteString(short + "\n\n")
	}
	if long := cmdtree.DataString(node, cmdtree.DataLongDescription); long != "" {
		sb.WriteString(long + "\n\n")
	}

	usage := chain.BuildUsage()
	if args := cmdtree.DataString(node, cmdtree.DataUsage); args != "" {
		usage += " " + args
	}
	sb.WriteString("## Usage\n\n```\n" + usage + "\n```\n")

	if perm := cmdtree.DataString(node, cmdtree.DataPermission); perm != "" {
		fmt.Fprintf(&sb, "\nRequires permission `%s`.\n", perm)
	}
	return sb.String()
}
