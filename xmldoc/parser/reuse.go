package parser

// reusePolicy decides whether an old node or token is provably
// unaffected by the edit. It is deliberately conservative: every
// rejection just means one more token gets relexed, while a false
// approval silently corrupts the tree.
type reusePolicy struct {
	edit     EditDelta
	affected affectedRange
}

func newReusePolicy(root *Node, edit EditDelta, lookback int) reusePolicy {
	return reusePolicy{
		edit:     edit,
		affected: computeAffectedRange(root, edit, lookback),
	}
}

// mappedStart translates an old-text start offset to new-text
// coordinates. Ranges overlapping the replaced span have no mapping.
func (p reusePolicy) mappedStart(oldStart, width int) (int, bool) {
	if oldStart >= p.edit.ChangeStart+p.edit.OldWidth {
		return oldStart + p.edit.Delta(), true
	}
	if oldStart+width <= p.edit.ChangeStart {
		return oldStart, true
	}
	return 0, false
}

// canReuseNode reports whether the whole subtree at oldStart can be
// yielded verbatim at newPos with the lexer in the given mode.
func (p reusePolicy) canReuseNode(n *Node, oldStart, newPos int, mode LexerMode) bool {
	if n.FullWidth() == 0 {
		return false
	}
	if n.ContainsDiagnostics() || n.ContainsMissing() {
		return false
	}
	if !nodeReusable(n.Kind) {
		return false
	}
	if mode != ModeText {
		return false
	}
	if p.affected.overlaps(oldStart, oldStart+n.FullWidth()) {
		return false
	}
	mapped, ok := p.mappedStart(oldStart, n.FullWidth())
	return ok && mapped == newPos
}

// canReuseToken is the leaf-level version of the same test, with the
// token's lexical context pinned by the mode check.
func (p reusePolicy) canReuseToken(tok *Token, oldStart, newPos int, mode LexerMode) bool {
	if tok.FullWidth() == 0 || tok.Missing {
		return false
	}
	if len(tok.Diagnostics) > 0 {
		return false
	}
	if tok.Kind == TokenEOF {
		// EOF must always come from a fresh scan so termination
		// tracks the new text, not the old.
		return false
	}
	if tok.Kind == TokenSkipped {
		// Skipped tokens are produced in both lexer modes, so the
		// mode check cannot pin their lexical context. Always relex.
		return false
	}
	if tokenMode(tok.Kind) != mode {
		return false
	}
	if p.affected.overlaps(oldStart, oldStart+tok.FullWidth()) {
		return false
	}
	mapped, ok := p.mappedStart(oldStart, tok.FullWidth())
	return ok && mapped == newPos
}

// nodeReusable lists node kinds that begin and end in text mode and
// are therefore safe to splice between freshly lexed tokens. Document
// is excluded because the root always spans the edit; SkippedText is
// excluded because its token's lexical context is ambiguous.
func nodeReusable(kind NodeKind) bool {
	switch kind {
	case KindElement, KindEmptyElement, KindStartTag, KindEndTag,
		KindTextNode, KindCDataSection, KindCommentNode, KindEntityReference:
		return true
	}
	return false
}

// tokenMode returns the lexer mode a token kind is produced in.
func tokenMode(kind TokenKind) LexerMode {
	switch kind {
	case TokenName, TokenEquals, TokenQuotedString, TokenGreaterThan, TokenSlashGreaterThan:
		return ModeTag
	}
	return ModeText
}

// modeAfterToken mirrors the lexer's mode transitions for a token that
// is being reused instead of rescanned.
func modeAfterToken(kind TokenKind, mode LexerMode) LexerMode {
	switch kind {
	case TokenLessThan, TokenLessThanSlash:
		return ModeTag
	case TokenGreaterThan, TokenSlashGreaterThan:
		return ModeText
	}
	return mode
}
