package parser

import "testing"

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	root, err := Parse([]byte(input), DefaultParseOptions())
	if err != nil {
		t.Fatal(err)
	}
	if root.FullWidth() != len(input) {
		t.Fatalf("tree covers %d bytes, input has %d", root.FullWidth(), len(input))
	}
	return root
}

func TestNavigatorTraversal(t *testing.T) {
	root := mustParse(t, "<a>1</a><b/>")
	nav := NewNavigator(root)

	if nav.Current().Kind != KindDocument {
		t.Fatalf("root is %v", nav.Current().Kind)
	}
	if pos := nav.CurrentAbsolutePosition(); pos != 0 {
		t.Fatalf("root position %d", pos)
	}

	elem, ok := nav.DescendToFirstChild()
	if !ok {
		t.Fatal("cannot descend into document")
	}
	if elem.Current().Kind != KindElement || elem.CurrentAbsolutePosition() != 0 {
		t.Fatalf("got %v at %d", elem.Current().Kind, elem.CurrentAbsolutePosition())
	}

	empty, ok := elem.AdvanceToNextSibling()
	if !ok {
		t.Fatal("no next sibling")
	}
	if empty.Current().Kind != KindEmptyElement || empty.CurrentAbsolutePosition() != 8 {
		t.Fatalf("got %v at %d", empty.Current().Kind, empty.CurrentAbsolutePosition())
	}

	// The earlier navigator values are unaffected by later moves.
	if elem.Current().Kind != KindElement || elem.CurrentAbsolutePosition() != 0 {
		t.Error("sibling move mutated the previous navigator")
	}
	if nav.Current().Kind != KindDocument {
		t.Error("descent mutated the root navigator")
	}

	up, ok := empty.AscendToParent()
	if !ok || up.Current().Kind != KindDocument {
		t.Fatal("cannot ascend back to document")
	}
}

func TestNavigatorSentinels(t *testing.T) {
	root := mustParse(t, "<a/>")
	nav := NewNavigator(root)

	if _, ok := nav.AscendToParent(); ok {
		t.Error("ascended above the root")
	}
	if _, ok := nav.AdvanceToNextSibling(); ok {
		t.Error("root has a sibling")
	}

	leaf := nav
	for {
		down, ok := leaf.DescendToFirstChild()
		if !ok {
			break
		}
		leaf = down
	}
	if !leaf.Current().IsToken() {
		t.Fatalf("deepest node is %v, want a token", leaf.Current().Kind)
	}
	if _, ok := leaf.DescendToFirstChild(); ok {
		t.Error("descended into a token")
	}
}

func TestNavigatorSkipSubtree(t *testing.T) {
	root := mustParse(t, "<a>1</a><b/>")
	nav := NewNavigator(root)
	elem, _ := nav.DescendToFirstChild()

	next := elem.SkipSubtree()
	if next.Current().Kind != KindEmptyElement {
		t.Fatalf("got %v", next.Current().Kind)
	}

	// Skipping the last meaningful children walks off the tree.
	end := next.SkipSubtree().SkipSubtree()
	if !end.IsExhausted() {
		t.Fatalf("not exhausted, at %v", end.Current().Kind)
	}
	if end.Current() != nil {
		t.Error("exhausted navigator has a current node")
	}
}

func TestNavigatorSeekTo(t *testing.T) {
	root := mustParse(t, "<a>1</a><b/>")
	nav := NewNavigator(root)

	at := nav.SeekTo(8)
	if at.Current().Kind != KindEmptyElement || at.CurrentAbsolutePosition() != 8 {
		t.Fatalf("got %v at %d", at.Current().Kind, at.CurrentAbsolutePosition())
	}

	// Seeking into the middle of a leaf stops on that leaf.
	inside := nav.SeekTo(5)
	if !inside.Current().IsToken() {
		t.Fatalf("got %v", inside.Current().Kind)
	}
	if pos := inside.CurrentAbsolutePosition(); pos > 5 {
		t.Errorf("overshot to %d", pos)
	}

	// Seeking re-ascends to the topmost node at the target offset.
	deep, _ := nav.DescendToFirstChild()
	deep, _ = deep.DescendToFirstChild()
	back := deep.SeekTo(8)
	if back.Current().Kind != KindEmptyElement {
		t.Fatalf("got %v, want the whole empty element", back.Current().Kind)
	}
}
