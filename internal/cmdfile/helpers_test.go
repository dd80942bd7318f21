// SPDX-License-Identifier: MPL-2.0

package cmdfile

import "github.com/cmdtree/cmdtree/pkg/cursor"

func cursorFor(input string) *cursor.Cursor {
	return cursor.New(input)
}
