package parser

// ReuseStats counts how each blended unit in a pass was produced.
type ReuseStats struct {
	NodesReused   int
	TokensReused  int
	TokensRelexed int
}

// Parser builds the syntax tree for an XML-flavored documentation
// fragment. It pulls blended units one at a time: reused subtrees are
// spliced into the tree directly, everything else arrives as tokens.
// Both the from-scratch and the incremental path run through the same
// grammar; a from-scratch parse is simply a blend with nothing to
// reuse.
type Parser struct {
	blender Blender
	unit    BlendedNode
	hasUnit bool
	// prev is the state that produced unit; re-reading from it turns
	// a node step into a token step.
	prev Blender
	opts ParseOptions
}

// Parse parses text from scratch.
func Parse(text []byte, opts ParseOptions) (*Node, error) {
	root, _, err := ParseIncremental(nil, text, EditDelta{ChangeStart: 0, OldWidth: 0, NewWidth: len(text)}, opts)
	return root, err
}

// ParseIncremental re-parses newText given the previous tree and the
// edit that produced the new text, reusing unaffected parts of the old
// tree. The returned stats report how much was reused.
func ParseIncremental(oldRoot *Node, newText []byte, edit EditDelta, opts ParseOptions) (*Node, ReuseStats, error) {
	return parseIncremental(oldRoot, newText, edit, opts, DefaultLookback)
}

// ParseIncrementalLookback is ParseIncremental with an explicit relex
// safety margin, measured in old-tree tokens before the edit.
func ParseIncrementalLookback(oldRoot *Node, newText []byte, edit EditDelta, opts ParseOptions, lookback int) (*Node, ReuseStats, error) {
	return parseIncremental(oldRoot, newText, edit, opts, lookback)
}

func parseIncremental(oldRoot *Node, newText []byte, edit EditDelta, opts ParseOptions, lookback int) (*Node, ReuseStats, error) {
	b, err := NewBlender(oldRoot, newText, edit, opts, lookback)
	if err != nil {
		return nil, ReuseStats{}, err
	}
	p := &Parser{blender: b, opts: opts}
	root := p.parseDocument()
	return root, p.blender.Stats(), nil
}

// peek loads the next blended unit without consuming it.
func (p *Parser) peek() BlendedNode {
	if !p.hasUnit {
		p.prev = p.blender
		p.unit = p.blender.ReadNode()
		p.hasUnit = true
	}
	return p.unit
}

// peekToken is peek restricted to tokens: a pending node unit is
// re-read from the previous blender state as a token step.
func (p *Parser) peekToken() *Token {
	u := p.peek()
	if u.Node != nil {
		p.unit = p.prev.ReadToken()
		u = p.unit
	}
	return u.Token
}

// take consumes the pending unit.
func (p *Parser) take() BlendedNode {
	u := p.peek()
	p.blender = u.Next
	p.hasUnit = false
	return u
}

// takeToken consumes the pending unit as a token leaf.
func (p *Parser) takeToken() *Node {
	tok := p.peekToken()
	u := p.unit
	p.blender = u.Next
	p.hasUnit = false
	return NewTokenNode(tok)
}

// expect consumes a token of the given kind, synthesizing a missing
// token when the source has something else. Interactive fragments are
// allowed to simply end mid-construct, so their missing tokens carry
// no diagnostic.
func (p *Parser) expect(kind TokenKind) *Node {
	if p.peekToken().Kind == kind {
		return p.takeToken()
	}
	return p.missing(kind)
}

func (p *Parser) missing(kind TokenKind) *Node {
	tok := &Token{Kind: kind, Missing: true}
	if p.opts.SourceKind == SourceKindRegular {
		tok.Diagnostics = []Diagnostic{{
			Code:    ErrMissingToken,
			Message: "missing " + kind.String(),
		}}
	}
	return NewTokenNode(tok)
}

func (p *Parser) parseDocument() *Node {
	var children []*Node
	for {
		if u := p.peek(); u.Node != nil {
			children = append(children, p.parseReused())
			continue
		}
		tok := p.peekToken()
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenLessThanSlash {
			children = append(children, p.parseUnexpectedEndTag())
			continue
		}
		children = append(children, p.parseContent())
	}
	children = append(children, p.takeToken())
	return NewNode(KindDocument, children...)
}

// parseReused splices a reused subtree into the tree. A reused start
// tag resumes element parsing after it.
func (p *Parser) parseReused() *Node {
	u := p.take()
	if u.Node.Kind == KindStartTag {
		return p.parseElementBody(u.Node)
	}
	return u.Node
}

func (p *Parser) parseContent() *Node {
	tok := p.peekToken()
	switch tok.Kind {
	case TokenLessThan:
		return p.parseElement()
	case TokenText:
		return NewNode(KindTextNode, p.takeToken())
	case TokenCData:
		return NewNode(KindCDataSection, p.takeToken())
	case TokenComment:
		return NewNode(KindCommentNode, p.takeToken())
	case TokenEntityRef:
		return NewNode(KindEntityReference, p.takeToken())
	}
	return NewNode(KindSkippedText, p.takeToken())
}

func (p *Parser) parseElement() *Node {
	lessThan := p.takeToken()
	name := p.expect(TokenName)

	var tagParts []*Node
	tagParts = append(tagParts, lessThan, name)
	for p.peekToken().Kind == TokenName {
		tagParts = append(tagParts, p.parseAttribute())
	}

	if p.peekToken().Kind == TokenSlashGreaterThan {
		tagParts = append(tagParts, p.takeToken())
		return NewNode(KindEmptyElement, tagParts...)
	}

	tagParts = append(tagParts, p.expect(TokenGreaterThan))
	startTag := NewNode(KindStartTag, tagParts...)
	return p.parseElementBody(startTag)
}

// parseElementBody parses content and the end tag after a start tag,
// whether freshly parsed or reused.
func (p *Parser) parseElementBody(startTag *Node) *Node {
	name := elementName(startTag)
	children := []*Node{startTag}
	for {
		if u := p.peek(); u.Node != nil {
			if u.Node.Kind == KindEndTag {
				if elementName(u.Node) == name {
					children = append(children, p.take().Node)
					return NewNode(KindElement, children...)
				}
				// Some other element's end tag: close here with a
				// missing one and let the caller deal with it.
				children = append(children, p.missingEndTag())
				return NewNode(KindElement, children...)
			}
			children = append(children, p.parseReused())
			continue
		}
		tok := p.peekToken()
		switch tok.Kind {
		case TokenEOF:
			children = append(children, p.missingEndTag())
			return NewNode(KindElement, children...)
		case TokenLessThanSlash:
			closing, matches := p.parseEndTag(name)
			if !matches {
				children = append(children, p.missingEndTag())
				return NewNode(KindElement, children...)
			}
			children = append(children, closing)
			return NewNode(KindElement, children...)
		default:
			children = append(children, p.parseContent())
		}
	}
}

// parseEndTag consumes an end tag when its name matches the open
// element. On a mismatch nothing is consumed and the caller closes the
// element with a missing end tag, leaving the stray tag for an outer
// element or the document level.
func (p *Parser) parseEndTag(openName string) (*Node, bool) {
	// The name token is only visible after the `</`, so check it by
	// reading ahead on a throwaway copy of the state.
	probe := *p
	lessSlash := probe.takeToken()
	nameTok := probe.peekToken()
	if nameTok.Kind == TokenName && nameTok.Text != openName {
		return nil, false
	}
	*p = probe
	name := p.expect(TokenName)
	greater := p.expect(TokenGreaterThan)
	return NewNode(KindEndTag, lessSlash, name, greater), true
}

// parseUnexpectedEndTag handles an end tag with no matching open
// element.
func (p *Parser) parseUnexpectedEndTag() *Node {
	lessSlash := p.takeToken()
	if p.opts.DocumentationMode == DocumentationModeDiagnose {
		lessSlash = NewTokenNode(lessSlash.Token.WithDiagnostic(Diagnostic{
			Code:    ErrUnexpectedEndTag,
			Message: "end tag has no matching start tag",
		}))
	}
	name := p.expect(TokenName)
	greater := p.expect(TokenGreaterThan)
	return NewNode(KindEndTag, lessSlash, name, greater)
}

func (p *Parser) parseAttribute() *Node {
	name := p.takeToken()
	eq := p.expect(TokenEquals)
	value := p.expect(TokenQuotedString)
	return NewNode(KindAttribute, name, eq, value)
}

func (p *Parser) missingEndTag() *Node {
	return NewNode(KindEndTag,
		p.missing(TokenLessThanSlash),
		p.missing(TokenName),
		p.missing(TokenGreaterThan),
	)
}

// elementName extracts the tag name from a start or end tag node.
func elementName(tag *Node) string {
	for _, child := range tag.Children {
		if child.Token != nil && child.Token.Kind == TokenName {
			return child.Token.Text
		}
	}
	return ""
}
