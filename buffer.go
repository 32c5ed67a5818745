package main

// TextBuffer is the text being edited plus an insertion point.
// The cursor is a rune offset and always stays within [0, Len()].
type TextBuffer struct {
	content []rune
	cursor  int
}

// NewTextBuffer creates a buffer holding seed with the cursor at its end.
func NewTextBuffer(seed string) *TextBuffer {
	content := []rune(seed)
	return &TextBuffer{content: content, cursor: len(content)}
}

// String returns the buffer content
func (b *TextBuffer) String() string {
	return string(b.content)
}

// Len returns the content length in runes
func (b *TextBuffer) Len() int {
	return len(b.content)
}

// Cursor returns the cursor offset
func (b *TextBuffer) Cursor() int {
	return b.cursor
}

// lineStart returns the offset of the first rune of the line containing pos.
func (b *TextBuffer) lineStart(pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if b.content[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// lineEnd returns the offset of the separator ending the line containing pos,
// or Len() on the last line.
func (b *TextBuffer) lineEnd(pos int) int {
	for i := pos; i < len(b.content); i++ {
		if b.content[i] == '\n' {
			return i
		}
	}
	return len(b.content)
}

// MoveLeft moves the cursor one rune left
func (b *TextBuffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right
func (b *TextBuffer) MoveRight() {
	if b.cursor < len(b.content) {
		b.cursor++
	}
}

// MoveUp moves to the same column on the previous line, clamped to that
// line's length. It does nothing on the first line.
func (b *TextBuffer) MoveUp() {
	start := b.lineStart(b.cursor)
	if start == 0 {
		return
	}
	prevStart := b.lineStart(start - 1)
	prevLen := (start - 1) - prevStart
	b.cursor = prevStart + min(b.cursor-start, prevLen)
}

// MoveDown moves to the same column on the next line, clamped to that
// line's length. It does nothing on the last line.
func (b *TextBuffer) MoveDown() {
	end := b.lineEnd(b.cursor)
	if end == len(b.content) {
		return
	}
	col := b.cursor - b.lineStart(b.cursor)
	nextStart := end + 1
	nextLen := b.lineEnd(nextStart) - nextStart
	b.cursor = nextStart + min(col, nextLen)
}

// MoveToLineStart moves the cursor to the start of the current line
func (b *TextBuffer) MoveToLineStart() {
	b.cursor = b.lineStart(b.cursor)
}

// MoveToLineEnd moves the cursor before the current line's separator
func (b *TextBuffer) MoveToLineEnd() {
	b.cursor = b.lineEnd(b.cursor)
}

// Insert puts r at the cursor and advances past it
func (b *TextBuffer) Insert(r rune) {
	b.content = append(b.content, 0)
	copy(b.content[b.cursor+1:], b.content[b.cursor:])
	b.content[b.cursor] = r
	b.cursor++
}

// DeleteBackward removes the rune left of the cursor. It reports whether
// anything was removed.
func (b *TextBuffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--
	return true
}

// DeleteForward removes the rune under the cursor. It reports whether
// anything was removed.
func (b *TextBuffer) DeleteForward() bool {
	if b.cursor == len(b.content) {
		return false
	}
	b.content = append(b.content[:b.cursor], b.content[b.cursor+1:]...)
	return true
}
