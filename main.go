// SPDX-License-Identifier: MPL-2.0

// Command cmdtree dispatches text input to a tree of declared commands.
package main

import cmd "github.com/cmdtree/cmdtree/cmd/cmdtree"

func main() {
	cmd.Execute()
}
