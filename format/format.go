// Package format renders parsed documentation trees for inspection.
package format

import (
	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

// Encoder writes a rendering of a syntax tree to its output.
type Encoder interface {
	Encode(root *parser.Node) error
}
