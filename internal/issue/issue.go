// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

// Issue identifiers.
const (
	CommandNotFoundID ID = iota + 1
	CommandFileParseErrorID
	DependencyCycleID
	ConfigLoadFailedID
	ParseFailedID
	NoSeparatorID
	ScriptFailedID
)

type (
	// ID identifies an issue in the catalog.
	ID int

	// MarkdownMsg is the markdown body of an issue.
	MarkdownMsg string

	// Issue is a catalog entry explaining a class of failure and how to fix it.
	Issue struct {
		id    ID
		title string
		mdMsg MarkdownMsg
	}
)

// ID returns the issue identifier.
func (i *Issue) ID() ID { return i.id }

// Title returns the issue's one-line heading.
func (i *Issue) Title() string { return i.title }

// MarkdownMsg returns the markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the issue with glamour. style is a glamour standard style
// name ("auto", "dark", "light", "notty") or a path to a style file.
func (i *Issue) Render(style string) (string, error) {
	var md strings.Builder
	md.WriteString("# " + i.title + "\n")
	md.WriteString(string(i.mdMsg))
	return render(md.String(), style)
}

var (
	render = glamour.Render

	issues = map[ID]*Issue{
		CommandNotFoundID: {
			id:    CommandNotFoundID,
			title: "Command not found",
			mdMsg: `
No registered command matches the input. The usage line above lists the
commands available at the point where matching stopped.

## Things you can try
- Print every command with
~~~
$ cmdtree tree
~~~
- Check that the command file declaring it is loaded (` + "`command_files`" + ` in the config)
- Quote arguments that contain spaces`,
		},
		CommandFileParseErrorID: {
			id:    CommandFileParseErrorID,
			title: "Invalid command file",
			mdMsg: `
A command file could not be decoded. Errors are reported with the path of the
offending field, for example ` + "`commands[2].head.kind`" + `.

## Common causes
- A command with neither ` + "`script`" + ` nor ` + "`show_usage`" + `
- A ` + "`regex`" + ` head without a ` + "`pattern`" + `
- Unknown field names, which the schema rejects

## Example
~~~cue
commands: [
  {name: "ping", show_usage: true},
  {name: "echo", parent: "ping", script: "echo \"$@\""},
]
~~~`,
		},
		DependencyCycleID: {
			id:    DependencyCycleID,
			title: "Command cycle detected",
			mdMsg: `
The ` + "`parent`" + ` references of some commands form a loop, so no tree can be
built from them.

## Things you can try
- Follow the printed path and remove one of the ` + "`parent`" + ` entries
- Run ` + "`cmdtree validate`" + ` after every change`,
		},
		ConfigLoadFailedID: {
			id:    ConfigLoadFailedID,
			title: "Failed to load configuration",
			mdMsg: `
The configuration file exists but could not be read or does not match the
schema.

## Things you can try
- Show the effective configuration
~~~
$ cmdtree config show
~~~
- Write a fresh default file with ` + "`cmdtree config init`" + `
- Remove the file to fall back to the defaults`,
		},
		ParseFailedID: {
			id:    ParseFailedID,
			title: "Invalid arguments",
			mdMsg: `
The command was found but its arguments could not be parsed. The marker
` + "`<---[HERE]`" + ` shows where parsing stopped.

## Things you can try
- Check the command usage with ` + "`cmdtree describe <command>`" + `
- Wrap arguments containing spaces in quotes`,
		},
		NoSeparatorID: {
			id:    NoSeparatorID,
			title: "Missing separator",
			mdMsg: `
The command matched, but the text right after it is not separated from it.

## Things you can try
- Add a space between the command and its arguments
- Set ` + "`no_argument_separator: true`" + ` on commands meant to be followed directly`,
		},
		ScriptFailedID: {
			id:    ScriptFailedID,
			title: "Command script failed",
			mdMsg: `
The command's script finished with a non-zero exit status.

## Things you can try
- Run again with ` + "`--verbose`" + ` to log the programs the script starts
- Check the script's own output above`,
		},
	}
)

// Get returns the issue with the given id, or nil.
func Get(id ID) *Issue {
	return issues[id]
}

// Values returns every issue ordered by ID.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}
