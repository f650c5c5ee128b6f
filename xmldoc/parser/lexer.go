package parser

import (
	"unicode"
	"unicode/utf8"
)

// LexerMode selects how the next token is scanned. XML-flavored lexing
// is mode-sensitive: the same bytes mean different things between tags
// and inside a tag, so the mode must be carried across token
// boundaries.
type LexerMode int

const (
	// ModeText scans character data between tags.
	ModeText LexerMode = iota
	// ModeTag scans the interior of a start or end tag.
	ModeTag
)

func (m LexerMode) String() string {
	if m == ModeTag {
		return "Tag"
	}
	return "Text"
}

// LexerState is the resumable scanning state carried across token
// boundaries.
type LexerState struct {
	Mode LexerMode
}

// Lexer scans tokens out of the source text. It holds no scanning
// position of its own: every call to ScanToken is a pure function of
// the requested position and state, which is what lets the blender
// restart scanning at arbitrary offsets after an edit.
type Lexer struct {
	input []byte
	opts  ParseOptions
}

func NewLexer(input []byte, opts ParseOptions) *Lexer {
	return &Lexer{input: input, opts: opts}
}

func (l *Lexer) Len() int {
	return len(l.input)
}

// ScanToken scans one token starting at pos with the given state and
// returns it together with the state to resume from after the token.
func (l *Lexer) ScanToken(pos int, state LexerState) (*Token, LexerState) {
	w := NewTextWindow(l.input, pos)
	if state.Mode == ModeTag {
		return l.scanInTag(w, state)
	}
	return l.scanInText(w, state)
}

func (l *Lexer) scanInText(w *TextWindow, state LexerState) (*Token, LexerState) {
	start := w.Position()
	if !w.HasMore() {
		return &Token{Kind: TokenEOF}, state
	}

	switch w.Peek() {
	case '<':
		if w.PeekAhead(1) == '/' {
			w.AdvanceN(2)
			return &Token{Kind: TokenLessThanSlash, Text: "</"}, LexerState{Mode: ModeTag}
		}
		if w.MatchesAt("<!--") {
			return l.scanComment(w, start), state
		}
		if w.MatchesAt("<![CDATA[") {
			return l.scanCData(w, start), state
		}
		if w.PeekAhead(1) == '!' {
			// Declarations such as <!DOCTYPE are not part of the
			// documentation language.
			w.AdvanceN(2)
			tok := &Token{Kind: TokenSkipped, Text: w.Text(start)}
			return l.diagnose(tok, ErrUnexpectedCharacter, "unexpected markup declaration", 0), state
		}
		w.Advance()
		return &Token{Kind: TokenLessThan, Text: "<"}, LexerState{Mode: ModeTag}
	case '&':
		return l.scanEntityRef(w, start), state
	}

	for w.HasMore() && w.Peek() != '<' && w.Peek() != '&' {
		w.Advance()
	}
	return &Token{Kind: TokenText, Text: w.Text(start)}, state
}

func (l *Lexer) scanInTag(w *TextWindow, state LexerState) (*Token, LexerState) {
	leading := l.scanWhitespaceTrivia(w)
	start := w.Position()

	if !w.HasMore() {
		return &Token{Kind: TokenEOF, Leading: leading}, state
	}

	ch := w.Peek()
	switch {
	case ch == '>':
		w.Advance()
		return &Token{Kind: TokenGreaterThan, Text: ">", Leading: leading}, LexerState{Mode: ModeText}
	case ch == '/' && w.PeekAhead(1) == '>':
		w.AdvanceN(2)
		return &Token{Kind: TokenSlashGreaterThan, Text: "/>", Leading: leading}, LexerState{Mode: ModeText}
	case ch == '=':
		w.Advance()
		return &Token{Kind: TokenEquals, Text: "=", Leading: leading}, state
	case ch == '"' || ch == '\'':
		return l.scanQuotedString(w, start, leading), state
	case isNameStart(ch):
		for isNameChar(w.Peek()) {
			w.Advance()
		}
		return &Token{Kind: TokenName, Text: w.Text(start), Leading: leading}, state
	}

	w.Advance()
	tok := &Token{Kind: TokenSkipped, Text: w.Text(start), Leading: leading}
	return l.diagnose(tok, ErrUnexpectedCharacter, "unexpected character in tag", 0), state
}

// scanWhitespaceTrivia collects tag-interior whitespace. With
// documentation mode None the whole run becomes a single trivia piece;
// otherwise line breaks are split out as end-of-line trivia.
func (l *Lexer) scanWhitespaceTrivia(w *TextWindow) []Trivia {
	var trivia []Trivia
	coarse := l.opts.DocumentationMode == DocumentationModeNone
	for {
		start := w.Position()
		if coarse {
			for isWhitespace(w.Peek()) || w.Peek() == '\r' || w.Peek() == '\n' {
				w.Advance()
			}
			if w.Position() > start {
				trivia = append(trivia, Trivia{Kind: TriviaWhitespace, Text: w.Text(start)})
			}
			return trivia
		}
		switch {
		case w.Peek() == '\n':
			w.Advance()
			trivia = append(trivia, Trivia{Kind: TriviaEndOfLine, Text: "\n"})
		case w.Peek() == '\r':
			w.Advance()
			if w.Peek() == '\n' {
				w.Advance()
			}
			trivia = append(trivia, Trivia{Kind: TriviaEndOfLine, Text: w.Text(start)})
		case isWhitespace(w.Peek()):
			for isWhitespace(w.Peek()) {
				w.Advance()
			}
			trivia = append(trivia, Trivia{Kind: TriviaWhitespace, Text: w.Text(start)})
		default:
			return trivia
		}
	}
}

func (l *Lexer) scanComment(w *TextWindow, start int) *Token {
	w.AdvanceN(4)
	for w.HasMore() {
		if w.MatchesAt("-->") {
			w.AdvanceN(3)
			return &Token{Kind: TokenComment, Text: w.Text(start)}
		}
		w.Advance()
	}
	tok := &Token{Kind: TokenComment, Text: w.Text(start)}
	return l.diagnose(tok, ErrUnterminatedComment, "unterminated comment", 0)
}

func (l *Lexer) scanCData(w *TextWindow, start int) *Token {
	w.AdvanceN(9)
	for w.HasMore() {
		if w.MatchesAt("]]>") {
			w.AdvanceN(3)
			return &Token{Kind: TokenCData, Text: w.Text(start)}
		}
		w.Advance()
	}
	tok := &Token{Kind: TokenCData, Text: w.Text(start)}
	return l.diagnose(tok, ErrUnterminatedCData, "unterminated CDATA section", 0)
}

func (l *Lexer) scanEntityRef(w *TextWindow, start int) *Token {
	w.Advance()
	if w.Peek() == '#' {
		w.Advance()
		for w.Peek() >= '0' && w.Peek() <= '9' {
			w.Advance()
		}
	} else {
		for isNameChar(w.Peek()) {
			w.Advance()
		}
	}
	if w.Peek() == ';' {
		w.Advance()
		return &Token{Kind: TokenEntityRef, Text: w.Text(start)}
	}
	tok := &Token{Kind: TokenEntityRef, Text: w.Text(start)}
	return l.diagnose(tok, ErrMalformedEntity, "entity reference is missing ';'", 0)
}

func (l *Lexer) scanQuotedString(w *TextWindow, start int, leading []Trivia) *Token {
	quote := w.Peek()
	w.Advance()
	for w.HasMore() && w.Peek() != quote && w.Peek() != '<' {
		w.Advance()
	}
	if w.Peek() == quote {
		w.Advance()
		return &Token{Kind: TokenQuotedString, Text: w.Text(start), Leading: leading}
	}
	tok := &Token{Kind: TokenQuotedString, Text: w.Text(start), Leading: leading}
	return l.diagnose(tok, ErrUnterminatedString, "unterminated quoted value", 0)
}

// diagnose attaches a diagnostic when the documentation mode asks for
// them; lexical errors never abort scanning either way.
func (l *Lexer) diagnose(tok *Token, code DiagnosticCode, msg string, offset int) *Token {
	if l.opts.DocumentationMode != DocumentationModeDiagnose {
		return tok
	}
	tok.Diagnostics = append(tok.Diagnostics, Diagnostic{Code: code, Message: msg, Offset: offset})
	return tok
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isNameStart(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r)
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == ':'
}

func isNameChar(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return isNameStart(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}
