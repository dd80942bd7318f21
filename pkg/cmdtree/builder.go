// SPDX-License-Identifier: MPL-2.0

package cmdtree

import "github.com/cmdtree/cmdtree/pkg/parse"

type (
	// SubCommand builds a child node fluently and attaches it on Finish.
	//
	//	root.AddSub().
	//		HeadLiteral("ping").
	//		Data(DataShortDescription, "Pings").
	//		Executes(ping).
	//		Finish()
	SubCommand struct {
		target *Node
		head   *parse.Matcher
		action Action
		data   []dataEntry
	}

	dataEntry struct {
		key   DataKey
		value any
	}
)

// AddSub starts building a child of n.
func (n *Node) AddSub() *SubCommand {
	return &SubCommand{target: n}
}

// Head sets the head matcher.
func (s *SubCommand) Head(head *parse.Matcher) *SubCommand {
	s.head = head
	return s
}

// HeadLiteral sets a literal keyword head.
func (s *SubCommand) HeadLiteral(keyword string) *SubCommand {
	return s.Head(parse.Wrap(parse.Literal(keyword)))
}

// Data stores a metadata entry on the node being built.
func (s *SubCommand) Data(key DataKey, value any) *SubCommand {
	s.data = append(s.data, dataEntry{key: key, value: value})
	return s
}

// Executes sets the action.
func (s *SubCommand) Executes(action Action) *SubCommand {
	s.action = action
	return s
}

// Finish creates the child, attaches it to the target and returns the target.
// It panics if no head was set.
func (s *SubCommand) Finish() *Node {
	if s.head == nil {
		panic("cmdtree: sub-command has no head")
	}
	child := NewNode(s.action, s.head)
	for _, e := range s.data {
		child.SetData(e.key, e.value)
	}
	s.target.AddChild(child)
	return s.target
}
