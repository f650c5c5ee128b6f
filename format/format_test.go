package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mgoertz-msft/roslyn-sub001/xmldoc/parser"
)

func parseDoc(t *testing.T, input string) *parser.Node {
	t.Helper()
	root, err := parser.Parse([]byte(input), parser.DefaultParseOptions())
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestASTJSONEncoder(t *testing.T) {
	root := parseDoc(t, `<a href="x">hi</a>`)

	var buf strings.Builder
	if err := NewASTJSONEncoder(&buf).Encode(root); err != nil {
		t.Fatal(err)
	}

	var got astJSONNode
	if err := json.Unmarshal([]byte(buf.String()), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Kind != "Document" {
		t.Errorf("root kind %q", got.Kind)
	}
	if got.Width != root.FullWidth() {
		t.Errorf("root width %d, want %d", got.Width, root.FullWidth())
	}
	if len(got.Children) == 0 {
		t.Fatal("document has no children")
	}
	if got.Children[0].Kind != "Element" {
		t.Errorf("first child kind %q", got.Children[0].Kind)
	}
}

func TestTextEncoder(t *testing.T) {
	root := parseDoc(t, "<a>x</a>")

	var buf strings.Builder
	if err := NewTextEncoder(&buf).Encode(root); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Element") || !strings.Contains(out, "TextNode") {
		t.Errorf("tree dump missing node kinds:\n%s", out)
	}
}
