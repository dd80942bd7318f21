// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

func newTreeCommand(app *App) *cobra.Command {
	var usageOnly bool

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Show every available command",
		Long: `Show every available command as an indented tree with its
description, followed by the one-line usage of the whole tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			if usageOnly {
				fmt.Fprintln(app.stdout, s.root.Node().Usage())
				return nil
			}
			renderTree(app.stdout, s.root.Node())
			return nil
		},
	}
	treeCmd.Flags().BoolVar(&usageOnly, "usage", false, "only print the one-line usage")
	return treeCmd
}

// renderTree prints one line per command below root, indented by depth.
func renderTree(w io.Writer, root *cmdtree.Node) {
	if len(root.Children()) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No commands found. Create commands.cue or commands.toml to get started."))
		return
	}

	fmt.Fprintln(w, TitleStyle.Render("Available Commands"))
	fmt.Fprintln(w)

	root.Walk(func(n *cmdtree.Node, depth int) {
		if depth == 0 {
			return
		}

		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(CmdStyle.Render(n.Head().Name()))
		if usage := cmdtree.DataString(n, cmdtree.DataUsage); usage != "" {
			sb.WriteString(" " + usage)
		}
		if desc := cmdtree.DataString(n, cmdtree.DataShortDescription); desc != "" {
			sb.WriteString(SubtitleStyle.Render(" - " + desc))
		}
		fmt.Fprintln(w, sb.String())
	})

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("Usage:"), root.Usage())
}
