package main

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	promptMarker = "> "
	// editorRows is how many rows a redraw clears, the most a note shows at once
	editorRows = 15
)

// RenderRegion maps buffer positions onto the rows the editor owns.
type RenderRegion struct {
	OriginRow   int // first row of the region, fixed for the whole session
	PromptWidth int // width of the prompt marker drawn before each line
	Rows        int // rows cleared on redraw
}

// Locate returns the physical position of offset cursor in content. The
// column counts terminal cells, so wide runes take two.
func (rr RenderRegion) Locate(content []rune, cursor int) (row, col int) {
	line, lastSep := 0, -1
	for i, r := range content[:cursor] {
		if r == '\n' {
			line++
			lastSep = i
		}
	}
	return rr.OriginRow + line, runewidth.StringWidth(string(content[lastSep+1:cursor])) + rr.PromptWidth
}

// Editor is a line editor session over a TextBuffer. It redraws its whole
// region after edits and only moves the cursor after navigation.
type Editor struct {
	buf    *TextBuffer
	region RenderRegion
	out    TerminalOutput
	prompt string
	done   bool
}

// NewEditor starts a session seeded with seed and draws it at originRow.
// In prompt mode every line is drawn behind a "> " marker.
func NewEditor(out TerminalOutput, originRow int, seed string, promptMode bool) *Editor {
	e := &Editor{
		buf:    NewTextBuffer(seed),
		region: RenderRegion{OriginRow: originRow, Rows: editorRows},
		out:    out,
	}
	if promptMode {
		e.prompt = promptMarker
		e.region.PromptWidth = len(promptMarker)
	}
	e.Redraw()
	return e
}

// EditContent runs an editing session until TAB and returns the text. If
// the key source fails the text typed so far is returned.
func EditContent(keys KeySource, out TerminalOutput, originRow int, seed string, promptMode bool) string {
	e := NewEditor(out, originRow, seed, promptMode)
	for !e.Done() {
		k, err := keys.ReadKey()
		if err != nil {
			logger.Debug().Err(err).Msg("key input closed, ending edit")
			break
		}
		e.Handle(k)
	}
	return e.Text()
}

// Text returns the current buffer content
func (e *Editor) Text() string {
	return e.buf.String()
}

// Cursor returns the buffer offset of the cursor
func (e *Editor) Cursor() int {
	return e.buf.Cursor()
}

// Done reports whether the finish key has been pressed
func (e *Editor) Done() bool {
	return e.done
}

// Handle applies one key press and reports whether editing has finished.
func (e *Editor) Handle(k Key) bool {
	if e.done {
		return true
	}

	switch k.Kind {
	case KeyTab:
		e.done = true
		return true
	case KeyLeft:
		e.buf.MoveLeft()
	case KeyRight:
		e.buf.MoveRight()
	case KeyUp:
		e.buf.MoveUp()
	case KeyDown:
		e.buf.MoveDown()
	case KeyHome:
		e.buf.MoveToLineStart()
	case KeyEnd:
		e.buf.MoveToLineEnd()
	case KeyBackspace:
		if e.buf.DeleteBackward() {
			e.Redraw()
		}
	case KeyDelete:
		if e.buf.DeleteForward() {
			e.Redraw()
		}
	case KeyEnter:
		e.buf.Insert('\n')
		e.Redraw()
	case KeyRune:
		if unicode.IsControl(k.Rune) {
			return false
		}
		e.buf.Insert(k.Rune)
		e.Redraw()
	default:
		return false
	}
	e.updateCursor()
	return false
}

// Redraw clears the region and rewrites the whole buffer into it.
func (e *Editor) Redraw() {
	e.out.ClearRegion(e.region.OriginRow, e.region.Rows)
	for i, line := range strings.Split(e.buf.String(), "\n") {
		if i == e.region.Rows {
			break
		}
		e.out.WriteAt(e.region.OriginRow+i, 0, e.prompt+line)
	}
	e.updateCursor()
}

func (e *Editor) updateCursor() {
	row, col := e.region.Locate(e.buf.content, e.buf.Cursor())
	e.out.SetCursor(row, col)
}
