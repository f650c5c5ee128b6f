package parser

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("xmldoc.parser")

// BlendedNode is the result of one blender step: a whole reused
// subtree, or a single token (reused or freshly scanned), together
// with the blender state to continue from. At most one of Node and
// Token is set; at end of input Token is the end-of-file token.
type BlendedNode struct {
	Node  *Node
	Token *Token
	Next  Blender
}

// Blender walks a previously built tree in lock-step with a lexer over
// the edited text. Each step either yields an old subtree or token
// verbatim or falls back to scanning one fresh token, then
// resynchronizes the old-tree cursor with the new text position so
// reuse can resume after the edited region.
//
// A Blender is a value: stepping returns the next state instead of
// mutating shared state, so a step result can be re-read (the parser
// re-reads a node step as a token step when its grammar position only
// accepts tokens).
type Blender struct {
	lexer  *Lexer
	cursor Navigator
	state  LexerState
	newPos int
	policy reusePolicy
	stats  ReuseStats
}

// DefaultLookback is the number of old-tree tokens the affected range
// is widened by to cover lexical lookahead. See computeAffectedRange.
const DefaultLookback = 1

// NewBlender starts a blending pass over newText given the previous
// tree's root and the edit that produced the new text. A nil oldRoot
// degrades to plain scanning (nothing to reuse). The edit is validated
// against both text lengths; an inconsistent delta is a caller bug.
func NewBlender(oldRoot *Node, newText []byte, edit EditDelta, opts ParseOptions, lookback int) (Blender, error) {
	oldLen := 0
	if oldRoot != nil {
		oldLen = oldRoot.FullWidth()
	}
	if err := edit.Validate(oldLen, len(newText)); err != nil {
		return Blender{}, err
	}
	if err := opts.Validate(); err != nil {
		return Blender{}, err
	}
	return Blender{
		lexer:  NewLexer(newText, opts),
		cursor: NewNavigator(oldRoot),
		policy: newReusePolicy(oldRoot, edit, lookback),
	}, nil
}

// Position returns the blender's offset in the new text: the sum of
// the full widths of every unit yielded so far.
func (b Blender) Position() int {
	return b.newPos
}

// Stats reports how the units yielded along this state's history were
// produced. Counters ride along inside the blender value, so units
// read on a discarded speculative state are not counted.
func (b Blender) Stats() ReuseStats {
	return b.stats
}

// ReadNode produces the next blended unit, preferring whole-subtree
// reuse, then token reuse, then a fresh scan.
func (b Blender) ReadNode() BlendedNode {
	return b.read(false)
}

// ReadToken produces the next blended unit without ever yielding a
// whole subtree. Used by the parser at grammar positions that only
// accept tokens.
func (b Blender) ReadToken() BlendedNode {
	return b.read(true)
}

func (b Blender) read(asToken bool) BlendedNode {
	cur := b
	for !cur.cursor.IsExhausted() {
		n := cur.cursor.Current()
		oldStart := cur.cursor.CurrentAbsolutePosition()

		if !asToken && !n.IsToken() && cur.policy.canReuseNode(n, oldStart, cur.newPos, cur.state.Mode) {
			next := cur
			next.cursor = cur.cursor.SkipSubtree()
			next.newPos += n.FullWidth()
			next.stats.NodesReused++
			log.Debugf("reused %s node: old %d, new %d, width %d", n.Kind, oldStart, cur.newPos, n.FullWidth())
			return BlendedNode{Node: n, Next: next}
		}

		if !n.IsToken() {
			down, ok := cur.cursor.DescendToFirstChild()
			if !ok {
				break
			}
			cur.cursor = down
			continue
		}

		if cur.policy.canReuseToken(n.Token, oldStart, cur.newPos, cur.state.Mode) {
			next := cur
			next.cursor = cur.cursor.SkipSubtree()
			next.newPos += n.FullWidth()
			next.state.Mode = modeAfterToken(n.Token.Kind, cur.state.Mode)
			next.stats.TokensReused++
			log.Debugf("reused %s token: old %d, new %d, width %d", n.Token.Kind, oldStart, cur.newPos, n.FullWidth())
			return BlendedNode{Token: n.Token, Next: next}
		}
		break
	}
	return cur.lexOne()
}

// lexOne scans one fresh token at the current new-text position and
// resynchronizes the old-tree cursor afterwards.
func (b Blender) lexOne() BlendedNode {
	tok, state := b.lexer.ScanToken(b.newPos, b.state)
	next := b
	next.state = state
	next.newPos += tok.FullWidth()
	if tok.Kind != TokenEOF {
		next.stats.TokensRelexed++
	}
	next.resync()
	log.Debugf("relexed %s token at %d, width %d", tok.Kind, b.newPos, tok.FullWidth())
	return BlendedNode{Token: tok, Next: next}
}

// resync derives the old-tree position corresponding to the current
// new-text position and seeks the cursor there. Positions inside the
// freshly inserted region have no old counterpart; the cursor stays
// put until the scan passes the region. This is what keeps the cost of
// an edit proportional to the affected region rather than to document
// size: once positions line up again, whole-subtree reuse resumes.
func (b *Blender) resync() {
	if b.cursor.IsExhausted() {
		return
	}
	var target int
	switch {
	case b.newPos <= b.policy.edit.ChangeStart:
		target = b.newPos
	case b.newPos >= b.policy.edit.ChangeStart+b.policy.edit.NewWidth:
		target = b.newPos - b.policy.edit.Delta()
	default:
		return
	}
	b.cursor = b.cursor.SeekTo(target)
}
