package parser

// navFrame records one step of the path from the root to the current
// node: the node itself, its index within its parent, and its absolute
// start position.
type navFrame struct {
	node       *Node
	childIndex int
	start      int
}

// Navigator is a persistent cursor over a previously built tree. Every
// movement returns a new navigator value and leaves the receiver (and
// the tree) untouched; running off the tree yields an exhausted
// sentinel rather than an error. Absolute positions are maintained
// frame by frame, so reading the current position is O(1) and a move
// costs O(depth) at worst.
type Navigator struct {
	frames []navFrame
}

func NewNavigator(root *Node) Navigator {
	if root == nil {
		return Navigator{}
	}
	return Navigator{frames: []navFrame{{node: root}}}
}

func (n Navigator) IsExhausted() bool {
	return len(n.frames) == 0
}

// Current returns the node under the cursor, or nil when exhausted.
func (n Navigator) Current() *Node {
	if len(n.frames) == 0 {
		return nil
	}
	return n.frames[len(n.frames)-1].node
}

// CurrentAbsolutePosition returns the start offset of the current node
// in the old text. Zero when exhausted.
func (n Navigator) CurrentAbsolutePosition() int {
	if len(n.frames) == 0 {
		return 0
	}
	return n.frames[len(n.frames)-1].start
}

func (n Navigator) clone() Navigator {
	frames := make([]navFrame, len(n.frames))
	copy(frames, n.frames)
	return Navigator{frames: frames}
}

// DescendToFirstChild moves to the first child of the current node.
// Fails for token leaves and childless nodes.
func (n Navigator) DescendToFirstChild() (Navigator, bool) {
	cur := n.Current()
	if cur == nil || len(cur.Children) == 0 {
		return n, false
	}
	next := n.clone()
	top := next.frames[len(next.frames)-1]
	next.frames = append(next.frames, navFrame{
		node:       cur.Children[0],
		childIndex: 0,
		start:      top.start,
	})
	return next, true
}

// AdvanceToNextSibling moves to the next sibling at the same level.
// Fails at the last sibling and at the root; the caller ascends.
func (n Navigator) AdvanceToNextSibling() (Navigator, bool) {
	if len(n.frames) < 2 {
		return n, false
	}
	top := n.frames[len(n.frames)-1]
	parent := n.frames[len(n.frames)-2].node
	if top.childIndex+1 >= len(parent.Children) {
		return n, false
	}
	next := n.clone()
	next.frames[len(next.frames)-1] = navFrame{
		node:       parent.Children[top.childIndex+1],
		childIndex: top.childIndex + 1,
		start:      top.start + top.node.FullWidth(),
	}
	return next, true
}

// AscendToParent pops one frame. Fails at the root.
func (n Navigator) AscendToParent() (Navigator, bool) {
	if len(n.frames) < 2 {
		return n, false
	}
	next := n.clone()
	next.frames = next.frames[:len(next.frames)-1]
	return next, true
}

// SkipSubtree advances past the current node without entering it: next
// sibling where there is one, ascending otherwise. Returns the
// exhausted sentinel once the whole tree has been passed.
func (n Navigator) SkipSubtree() Navigator {
	cur := n
	for {
		if next, ok := cur.AdvanceToNextSibling(); ok {
			return next
		}
		parent, ok := cur.AscendToParent()
		if !ok {
			return Navigator{}
		}
		cur = parent
	}
}

// SeekTo positions the cursor at the topmost node starting exactly at
// target, moving only forward. When target falls strictly inside a
// leaf the cursor stops on that leaf; the reuse test then rejects the
// misaligned node and the caller relexes past it.
func (n Navigator) SeekTo(target int) Navigator {
	cur := n
	for {
		node := cur.Current()
		if node == nil {
			return cur
		}
		start := cur.CurrentAbsolutePosition()
		switch {
		case start+node.FullWidth() <= target:
			cur = cur.SkipSubtree()
		case start == target:
			return cur.ascendWhileSameStart(target)
		default:
			down, ok := cur.DescendToFirstChild()
			if !ok {
				return cur
			}
			cur = down
		}
	}
}

// ascendWhileSameStart climbs to the outermost ancestor that also
// starts at target, so a subtree the cursor had previously descended
// into can be offered for whole-subtree reuse again.
func (n Navigator) ascendWhileSameStart(target int) Navigator {
	cur := n
	for len(cur.frames) >= 2 && cur.frames[len(cur.frames)-2].start == target {
		parent, ok := cur.AscendToParent()
		if !ok {
			break
		}
		cur = parent
	}
	return cur
}
