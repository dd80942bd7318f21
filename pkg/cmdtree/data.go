// SPDX-License-Identifier: MPL-2.0

package cmdtree

// DataKey names a metadata entry on a Node. Keys are unique per node and
// consumers are responsible for the type of the value they store.
type DataKey string

// Recognized metadata keys.
const (
	// DataUsage is a string describing the command's arguments, e.g. "<message>".
	DataUsage DataKey = "usage"
	// DataShortDescription is a one-line string description.
	DataShortDescription DataKey = "short_description"
	// DataLongDescription is a longer string description, may be markdown.
	DataLongDescription DataKey = "long_description"
	// DataPermission is a string permission required to run the command.
	DataPermission DataKey = "permission"
	// DataIdentifier is the string identifier used in usage output and diagnostics.
	DataIdentifier DataKey = "identifier"
	// DataNoArgumentSeparator is a bool. When true, no separator is expected
	// between this node's head and whatever follows it.
	DataNoArgumentSeparator DataKey = "no_argument_separator"
)

// DataAs returns the value stored under key when it exists and has type T.
func DataAs[T any](n *Node, key DataKey) (T, bool) {
	v, ok := n.Data(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// DataString returns the string stored under key, or "".
func DataString(n *Node, key DataKey) string {
	s, _ := DataAs[string](n, key)
	return s
}

func noArgumentSeparator(n *Node) bool {
	v, _ := DataAs[bool](n, DataNoArgumentSeparator)
	return v
}
