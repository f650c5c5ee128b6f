package format

import (
	"encoding/json"
	"io"

	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(root *parser.Node) error {
	text, err := json.MarshalIndent(nodeToJSON(root), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type astJSONNode struct {
	Kind        string          `json:"kind"`
	Width       int             `json:"width"`
	Token       string          `json:"token,omitempty"`
	Missing     bool            `json:"missing,omitempty"`
	Diagnostics []astJSONDiag   `json:"diagnostics,omitempty"`
	Leading     []astJSONTrivia `json:"leading,omitempty"`
	Trailing    []astJSONTrivia `json:"trailing,omitempty"`
	Children    []*astJSONNode  `json:"children,omitempty"`
}

type astJSONDiag struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Offset  int    `json:"offset"`
}

type astJSONTrivia struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func nodeToJSON(n *parser.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:  n.Kind.String(),
		Width: n.FullWidth(),
	}

	if n.Token != nil {
		jn.Kind = n.Token.Kind.String()
		jn.Token = n.Token.Text
		jn.Missing = n.Token.Missing
		for _, d := range n.Token.Diagnostics {
			jn.Diagnostics = append(jn.Diagnostics, astJSONDiag{
				Code:    int(d.Code),
				Message: d.Message,
				Offset:  d.Offset,
			})
		}
		for _, tr := range n.Token.Leading {
			jn.Leading = append(jn.Leading, astJSONTrivia{Kind: tr.Kind.String(), Text: tr.Text})
		}
		for _, tr := range n.Token.Trailing {
			jn.Trailing = append(jn.Trailing, astJSONTrivia{Kind: tr.Kind.String(), Text: tr.Text})
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
