package parser

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenSkipped

	// Text-mode tokens
	TokenText
	TokenEntityRef
	TokenCData
	TokenComment

	// Tag delimiters
	TokenLessThan
	TokenLessThanSlash
	TokenGreaterThan
	TokenSlashGreaterThan

	// Tag interior
	TokenName
	TokenEquals
	TokenQuotedString
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:              "EOF",
	TokenSkipped:          "Skipped",
	TokenText:             "Text",
	TokenEntityRef:        "EntityRef",
	TokenCData:            "CData",
	TokenComment:          "Comment",
	TokenLessThan:         "<",
	TokenLessThanSlash:    "</",
	TokenGreaterThan:      ">",
	TokenSlashGreaterThan: "/>",
	TokenName:             "Name",
	TokenEquals:           "=",
	TokenQuotedString:     "QuotedString",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type TriviaKind int

const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
)

func (k TriviaKind) String() string {
	if k == TriviaEndOfLine {
		return "EndOfLine"
	}
	return "Whitespace"
}

// Trivia is non-semantic text attached to a token. It is preserved so
// that concatenating every token's full text reconstructs the source
// exactly.
type Trivia struct {
	Kind TriviaKind
	Text string
}

type DiagnosticCode int

const (
	ErrUnterminatedString DiagnosticCode = iota + 1
	ErrUnterminatedComment
	ErrUnterminatedCData
	ErrMalformedEntity
	ErrUnexpectedCharacter
	ErrMissingToken
	ErrUnexpectedEndTag
	ErrEndTagMismatch
)

// Diagnostic describes a problem found while lexing or parsing.
// Offset is relative to the start of the token the diagnostic is
// attached to.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Offset  int
}

// Token is a lexical unit together with its surrounding trivia.
// A missing token is synthesized by the parser for a construct the
// source does not actually contain; it has zero width.
type Token struct {
	Kind        TokenKind
	Text        string
	Leading     []Trivia
	Trailing    []Trivia
	Diagnostics []Diagnostic
	Missing     bool
}

// Width is the number of bytes of the token's own text.
func (t *Token) Width() int {
	return len(t.Text)
}

// FullWidth includes leading and trailing trivia.
func (t *Token) FullWidth() int {
	w := len(t.Text)
	for _, tr := range t.Leading {
		w += len(tr.Text)
	}
	for _, tr := range t.Trailing {
		w += len(tr.Text)
	}
	return w
}

// FullText reconstructs the token's exact source text, trivia included.
func (t *Token) FullText() string {
	if len(t.Leading) == 0 && len(t.Trailing) == 0 {
		return t.Text
	}
	var out []byte
	for _, tr := range t.Leading {
		out = append(out, tr.Text...)
	}
	out = append(out, t.Text...)
	for _, tr := range t.Trailing {
		out = append(out, tr.Text...)
	}
	return string(out)
}

// WithDiagnostic returns a copy of the token carrying an extra
// diagnostic. Tokens are treated as immutable once produced.
func (t *Token) WithDiagnostic(d Diagnostic) *Token {
	clone := *t
	clone.Diagnostics = append(append([]Diagnostic(nil), t.Diagnostics...), d)
	return &clone
}
