package format

import (
	"io"

	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

// TextEncoder writes the indented tree dump produced by Node.String.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(root *parser.Node) error {
	_, err := io.WriteString(e.w, root.String())
	return err
}
