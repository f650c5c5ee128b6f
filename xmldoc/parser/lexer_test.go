package parser

import "testing"

func lexAll(t *testing.T, input string, opts ParseOptions) []*Token {
	t.Helper()
	lexer := NewLexer([]byte(input), opts)
	var tokens []*Token
	pos := 0
	state := LexerState{}
	for {
		tok, next := lexer.ScanToken(pos, state)
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
		if tok.FullWidth() == 0 {
			t.Fatalf("zero-width %s token at %d", tok.Kind, pos)
		}
		pos += tok.FullWidth()
		state = next
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"hello", []TokenKind{TokenText, TokenEOF}},
		{"<a>", []TokenKind{TokenLessThan, TokenName, TokenGreaterThan, TokenEOF}},
		{"<a/>", []TokenKind{TokenLessThan, TokenName, TokenSlashGreaterThan, TokenEOF}},
		{"</a>", []TokenKind{TokenLessThanSlash, TokenName, TokenGreaterThan, TokenEOF}},
		{"<a>x</a>", []TokenKind{TokenLessThan, TokenName, TokenGreaterThan, TokenText, TokenLessThanSlash, TokenName, TokenGreaterThan, TokenEOF}},
		{`<a href="x">`, []TokenKind{TokenLessThan, TokenName, TokenName, TokenEquals, TokenQuotedString, TokenGreaterThan, TokenEOF}},
		{"<a b='1'/>", []TokenKind{TokenLessThan, TokenName, TokenName, TokenEquals, TokenQuotedString, TokenSlashGreaterThan, TokenEOF}},
		{"&amp;", []TokenKind{TokenEntityRef, TokenEOF}},
		{"&#38;", []TokenKind{TokenEntityRef, TokenEOF}},
		{"a&amp;b", []TokenKind{TokenText, TokenEntityRef, TokenText, TokenEOF}},
		{"<!-- note -->", []TokenKind{TokenComment, TokenEOF}},
		{"<![CDATA[x < y]]>", []TokenKind{TokenCData, TokenEOF}},
		{"a > b", []TokenKind{TokenText, TokenEOF}},
		{"< a >", []TokenKind{TokenLessThan, TokenName, TokenGreaterThan, TokenEOF}},
		{"<!DOCTYPE x>", []TokenKind{TokenSkipped, TokenText, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input, DefaultParseOptions())
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.expected))
			}
			for i, tok := range tokens {
				if tok.Kind != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, tok.Kind, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerFullFidelity(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"<a href=\"x\">link</a>",
		"<a\n  b='1'\n  c='2'>text</a>",
		"<!-- c --><![CDATA[d]]>&amp;",
		"<a href=\"unterminated",
		"<!-- unterminated",
		"&broken",
		"<a b=>",
		"< \t a >",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			total := 0
			for _, tok := range lexAll(t, input, DefaultParseOptions()) {
				total += tok.FullWidth()
			}
			if total != len(input) {
				t.Errorf("tokens cover %d bytes, input has %d", total, len(input))
			}
		})
	}
}

func TestLexerDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
		code  DiagnosticCode
	}{
		{`<a b="x`, TokenQuotedString, ErrUnterminatedString},
		{"<a b='x", TokenQuotedString, ErrUnterminatedString},
		{"<!-- x", TokenComment, ErrUnterminatedComment},
		{"<![CDATA[x", TokenCData, ErrUnterminatedCData},
		{"&amp", TokenEntityRef, ErrMalformedEntity},
		{"<a @>", TokenSkipped, ErrUnexpectedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var found *Token
			for _, tok := range lexAll(t, tt.input, DefaultParseOptions()) {
				if tok.Kind == tt.kind {
					found = tok
					break
				}
			}
			if found == nil {
				t.Fatalf("no %v token in %q", tt.kind, tt.input)
			}
			if len(found.Diagnostics) == 0 {
				t.Fatal("expected a diagnostic")
			}
			if found.Diagnostics[0].Code != tt.code {
				t.Errorf("got code %d, want %d", found.Diagnostics[0].Code, tt.code)
			}
		})
	}
}

func TestLexerDiagnosticsSuppressed(t *testing.T) {
	opts, err := NewParseOptions(DocumentationModeParse, SourceKindRegular)
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range lexAll(t, `<a b="x`, opts) {
		if len(tok.Diagnostics) > 0 {
			t.Errorf("%v token has diagnostics in Parse mode", tok.Kind)
		}
	}
}

func TestLexerTagTrivia(t *testing.T) {
	tokens := lexAll(t, "<a\n  b='1'>", DefaultParseOptions())
	// <, a, b, =, '1', >, EOF
	if len(tokens) != 7 {
		t.Fatalf("got %d tokens, want 7", len(tokens))
	}
	b := tokens[2]
	if b.Kind != TokenName || b.Text != "b" {
		t.Fatalf("token 2 is %v %q, want Name b", b.Kind, b.Text)
	}
	if len(b.Leading) != 2 {
		t.Fatalf("got %d leading trivia, want 2", len(b.Leading))
	}
	if b.Leading[0].Kind != TriviaEndOfLine || b.Leading[1].Kind != TriviaWhitespace {
		t.Errorf("got trivia kinds %v, %v", b.Leading[0].Kind, b.Leading[1].Kind)
	}
	if b.FullWidth() != 4 {
		t.Errorf("full width %d, want 4", b.FullWidth())
	}
}

func TestLexerCoarseTrivia(t *testing.T) {
	opts, err := NewParseOptions(DocumentationModeNone, SourceKindRegular)
	if err != nil {
		t.Fatal(err)
	}
	tokens := lexAll(t, "<a\n  b='1'>", opts)
	b := tokens[2]
	if len(b.Leading) != 1 {
		t.Fatalf("got %d leading trivia, want 1", len(b.Leading))
	}
	if b.Leading[0].Text != "\n  " {
		t.Errorf("got trivia %q", b.Leading[0].Text)
	}
}
