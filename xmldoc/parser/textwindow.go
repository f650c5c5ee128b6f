package parser

// TextWindow is a forward-only cursor over the source text. It tracks
// the absolute byte offset and hands out slices of the underlying text;
// it never copies or mutates the buffer.
type TextWindow struct {
	text []byte
	pos  int
}

func NewTextWindow(text []byte, pos int) *TextWindow {
	if pos < 0 {
		pos = 0
	}
	return &TextWindow{text: text, pos: pos}
}

func (w *TextWindow) Position() int {
	return w.pos
}

func (w *TextWindow) HasMore() bool {
	return w.pos < len(w.text)
}

// Peek returns the byte at the current position, or 0 at end of text.
func (w *TextWindow) Peek() byte {
	if w.pos >= len(w.text) {
		return 0
	}
	return w.text[w.pos]
}

// PeekAhead returns the byte n positions ahead, or 0 past end of text.
func (w *TextWindow) PeekAhead(n int) byte {
	if w.pos+n >= len(w.text) {
		return 0
	}
	return w.text[w.pos+n]
}

func (w *TextWindow) Advance() {
	if w.pos < len(w.text) {
		w.pos++
	}
}

func (w *TextWindow) AdvanceN(n int) {
	w.pos += n
	if w.pos > len(w.text) {
		w.pos = len(w.text)
	}
}

// Text returns the source text between from and the current position.
func (w *TextWindow) Text(from int) string {
	return string(w.text[from:w.pos])
}

// MatchesAt reports whether the text at the current position starts
// with s.
func (w *TextWindow) MatchesAt(s string) bool {
	if w.pos+len(s) > len(w.text) {
		return false
	}
	return string(w.text[w.pos:w.pos+len(s)]) == s
}
