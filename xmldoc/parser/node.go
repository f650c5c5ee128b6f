package parser

import "strings"

type NodeKind int

const (
	KindToken NodeKind = iota

	KindDocument
	KindElement
	KindEmptyElement
	KindStartTag
	KindEndTag
	KindAttribute

	// Leaf content wrappers
	KindTextNode
	KindCDataSection
	KindCommentNode
	KindEntityReference
	KindSkippedText
)

var nodeKindNames = map[NodeKind]string{
	KindToken:           "Token",
	KindDocument:        "Document",
	KindElement:         "Element",
	KindEmptyElement:    "EmptyElement",
	KindStartTag:        "StartTag",
	KindEndTag:          "EndTag",
	KindAttribute:       "Attribute",
	KindTextNode:        "TextNode",
	KindCDataSection:    "CDataSection",
	KindCommentNode:     "CommentNode",
	KindEntityReference: "EntityReference",
	KindSkippedText:     "SkippedText",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one node of the immutable syntax tree. Nodes store widths,
// not absolute positions: a node's full width is the sum of its
// children's, and a token leaf's is its token's full width. Absolute
// positions are derived by the navigator, which is what lets an
// unmodified subtree be reused verbatim after an edit shifts the text
// underneath it.
type Node struct {
	Kind     NodeKind
	Children []*Node
	Token    *Token

	fullWidth           int
	containsDiagnostics bool
	containsMissing     bool
}

// NewNode builds an interior node from its children. Width and the
// diagnostic flags are computed once here and never change.
func NewNode(kind NodeKind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	for _, child := range children {
		if child == nil {
			continue
		}
		n.Children = append(n.Children, child)
		n.fullWidth += child.fullWidth
		n.containsDiagnostics = n.containsDiagnostics || child.containsDiagnostics
		n.containsMissing = n.containsMissing || child.containsMissing
	}
	return n
}

// NewTokenNode wraps a token as a leaf node.
func NewTokenNode(tok *Token) *Node {
	return &Node{
		Kind:                KindToken,
		Token:               tok,
		fullWidth:           tok.FullWidth(),
		containsDiagnostics: len(tok.Diagnostics) > 0,
		containsMissing:     tok.Missing,
	}
}

func (n *Node) IsToken() bool {
	return n.Token != nil
}

func (n *Node) FullWidth() int {
	return n.fullWidth
}

// ContainsDiagnostics reports whether the node or any descendant
// carries a diagnostic. Such nodes are never reused across edits since
// their reported positions would go stale.
func (n *Node) ContainsDiagnostics() bool {
	return n.containsDiagnostics
}

// ContainsMissing reports whether the node or any descendant contains
// a synthesized missing token.
func (n *Node) ContainsMissing() bool {
	return n.containsMissing
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// FullText reconstructs the exact source text covered by the node.
func (n *Node) FullText() string {
	var sb strings.Builder
	n.writeFullText(&sb)
	return sb.String()
}

func (n *Node) writeFullText(sb *strings.Builder) {
	if n.Token != nil {
		sb.WriteString(n.Token.FullText())
		return
	}
	for _, child := range n.Children {
		child.writeFullText(sb)
	}
}

func (n *Node) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *Node) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	if n.Token != nil {
		sb.WriteString(n.Token.Kind.String())
		if n.Token.Missing {
			sb.WriteString(" (missing)")
		} else if n.Token.Text != "" {
			sb.WriteString(" ")
			sb.WriteString(n.Token.Text)
		}
	} else {
		sb.WriteString(n.Kind.String())
	}
	if n.Token != nil && len(n.Token.Diagnostics) > 0 {
		sb.WriteString(" ERROR: ")
		sb.WriteString(n.Token.Diagnostics[0].Message)
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1)
	}
}

// tokenRangeAt returns the absolute range of the leaf token containing
// pos, walking down by accumulated widths. A pos outside the tree
// yields (0, 0, false).
func tokenRangeAt(root *Node, pos int) (start, end int, ok bool) {
	if root == nil || pos < 0 || pos >= root.fullWidth {
		return 0, 0, false
	}
	n := root
	offset := 0
	for n.Token == nil {
		found := false
		for _, child := range n.Children {
			if pos < offset+child.fullWidth {
				n = child
				found = true
				break
			}
			offset += child.fullWidth
		}
		if !found {
			return 0, 0, false
		}
	}
	return offset, offset + n.fullWidth, true
}
