// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	"fmt"
	"regexp"

	"github.com/cmdtree/cmdtree/pkg/cueutil"
)

// validate checks what the schema cannot. Every problem is reported, each
// with the JSON-style path of the offending field.
func validate(file *File, filename string) error {
	var problems []cueutil.Problem
	add := func(i int, field, format string, args ...any) {
		path := fmt.Sprintf("commands[%d]", i)
		if field != "" {
			path += "." + field
		}
		problems = append(problems, cueutil.Problem{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	for i, cmd := range file.Commands {
		switch {
		case cmd.Script == "" && !cmd.ShowUsage:
			add(i, "", "command %q needs either script or show_usage", cmd.Name)
		case cmd.Script != "" && cmd.ShowUsage:
			add(i, "", "command %q sets both script and show_usage", cmd.Name)
		}
		if cmd.Parent == cmd.Name {
			add(i, "parent", "command %q cannot be its own parent", cmd.Name)
		}
		if cmd.Head != nil {
			validateHead(cmd.Head, func(field, format string, args ...any) {
				add(i, "head."+field, format, args...)
			})
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &cueutil.DecodeError{File: filename, Problems: problems}
}

func validateHead(h *Head, add func(field, format string, args ...any)) {
	ranged := h.Kind == HeadInteger || h.Kind == HeadDecimal

	if h.Text != "" && h.Kind != HeadLiteral {
		add("text", "only literal heads take a text")
	}
	if h.Kind == HeadRegex {
		if h.Pattern == "" {
			add("pattern", "regex heads need a pattern")
		} else if _, err := regexp.Compile(h.Pattern); err != nil {
			add("pattern", "invalid regular expression: %v", err)
		}
	} else if h.Pattern != "" {
		add("pattern", "only regex heads take a pattern")
	}

	if !ranged {
		if h.Min != nil {
			add("min", "only integer and decimal heads take a minimum")
		}
		if h.Max != nil {
			add("max", "only integer and decimal heads take a maximum")
		}
		return
	}
	if h.Kind == HeadInteger {
		if h.Min != nil && !isWhole(*h.Min) {
			add("min", "integer heads need a whole minimum, got %v", *h.Min)
		}
		if h.Max != nil && !isWhole(*h.Max) {
			add("max", "integer heads need a whole maximum, got %v", *h.Max)
		}
	}
	if h.Min != nil && h.Max != nil && *h.Min > *h.Max {
		add("max", "maximum %v is smaller than minimum %v", *h.Max, *h.Min)
	}
}
