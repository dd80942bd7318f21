// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	"fmt"
	"math"
	"regexp"

	"github.com/cmdtree/cmdtree/pkg/parse"
)

// Head kinds.
const (
	HeadLiteral HeadKind = "literal"
	HeadInteger HeadKind = "integer"
	HeadDecimal HeadKind = "decimal"
	HeadRegex   HeadKind = "regex"
	HeadWord    HeadKind = "word"
)

type (
	// HeadKind selects the parser used as a command's head.
	HeadKind string

	// Head describes the input that selects a command.
	Head struct {
		Kind HeadKind `json:"kind"`
		// Text is the keyword of a literal head. Defaults to the command name.
		Text string `json:"text,omitempty"`
		// Pattern is the regular expression of a regex head.
		Pattern string `json:"pattern,omitempty"`
		// Min and Max bound integer and decimal heads.
		Min *float64 `json:"min,omitempty"`
		Max *float64 `json:"max,omitempty"`
	}
)

func buildHead(cmd Command) (*parse.Matcher, error) {
	h := cmd.Head
	if h == nil {
		h = &Head{Kind: HeadLiteral}
	}

	switch h.Kind {
	case HeadLiteral, "":
		text := h.Text
		if text == "" {
			text = cmd.Name
		}
		return parse.Wrap(parse.Literal(text)), nil
	case HeadInteger:
		return parse.Wrap(integerHead(h.Min, h.Max)), nil
	case HeadDecimal:
		return parse.Wrap(decimalHead(h.Min, h.Max)), nil
	case HeadRegex:
		re, err := regexp.Compile(h.Pattern)
		if err != nil {
			return nil, fmt.Errorf("head pattern: %w", err)
		}
		return parse.Wrap(parse.NamedPattern(cmd.Name, re)), nil
	case HeadWord:
		return parse.Wrap(parse.Word()), nil
	default:
		return nil, fmt.Errorf("unknown head kind %q", h.Kind)
	}
}

func integerHead(minimum, maximum *float64) parse.Parser[int] {
	switch {
	case minimum != nil && maximum != nil:
		return parse.IntBetween(int(*minimum), int(*maximum))
	case minimum != nil:
		return parse.IntAtLeast(int(*minimum))
	case maximum != nil:
		return parse.IntAtMost(int(*maximum))
	default:
		return parse.Integer()
	}
}

func decimalHead(minimum, maximum *float64) parse.Parser[float64] {
	switch {
	case minimum != nil && maximum != nil:
		return parse.DecimalBetween(*minimum, *maximum)
	case minimum != nil:
		return parse.DecimalAtLeast(*minimum)
	case maximum != nil:
		return parse.DecimalAtMost(*maximum)
	default:
		return parse.Decimal()
	}
}

func isWhole(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}
