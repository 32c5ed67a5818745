package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// TerminalOutput is the part of a terminal the editor draws on. Rows and
// columns are zero-based.
type TerminalOutput interface {
	WriteAt(row, col int, text string)
	SetCursor(row, col int)
	ClearRegion(startRow, rowCount int)
}

// pen selects the foreground style of subsequent screen writes
type pen int

const (
	penText pen = iota
	penPrimary
	penAccent
	penHighlight
	penError
)

func (p pen) style() lipgloss.Style {
	switch p {
	case penPrimary:
		return primaryStyle
	case penAccent:
		return accentStyle
	case penHighlight:
		return highlightStyle
	case penError:
		return errorStyle
	}
	return textStyle
}

type cell struct {
	r   rune
	pen pen
	// cont marks the second cell of a wide rune
	cont bool
}

// Screen is an in-memory grid of cells implementing TerminalOutput. Writes
// outside the grid are dropped. Wide runes fill two cells and zero-width
// runes are not stored.
type Screen struct {
	width, height int
	cells         [][]cell
	pen           pen
	cursorRow     int
	cursorCol     int
	cursorVisible bool
}

func newScreen(width, height int) *Screen {
	s := &Screen{cursorVisible: true}
	s.Resize(width, height)
	return s
}

// Resize changes the grid size, keeping whatever still fits
func (s *Screen) Resize(width, height int) {
	cells := make([][]cell, height)
	for row := range cells {
		cells[row] = make([]cell, width)
		if row < len(s.cells) {
			copy(cells[row], s.cells[row])
		}
	}
	s.width, s.height, s.cells = width, height, cells
}

// SetPen sets the foreground used by later writes
func (s *Screen) SetPen(p pen) {
	s.pen = p
}

// SetCursorVisible shows or hides the cursor cell
func (s *Screen) SetCursorVisible(v bool) {
	s.cursorVisible = v
}

// Cursor returns the physical cursor position
func (s *Screen) Cursor() (row, col int) {
	return s.cursorRow, s.cursorCol
}

func (s *Screen) WriteAt(row, col int, text string) {
	for _, r := range text {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if row >= 0 && row < s.height && col >= 0 && col+w <= s.width {
			s.cells[row][col] = cell{r: r, pen: s.pen}
			if w == 2 {
				s.cells[row][col+1] = cell{pen: s.pen, cont: true}
			}
		}
		col += w
	}
}

func (s *Screen) SetCursor(row, col int) {
	s.cursorRow, s.cursorCol = row, col
}

func (s *Screen) ClearRegion(startRow, rowCount int) {
	for row := max(startRow, 0); row < startRow+rowCount && row < s.height; row++ {
		clear(s.cells[row])
	}
}

// Line returns the plain text of a row without trailing blanks
func (s *Screen) Line(row int) string {
	if row < 0 || row >= s.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range s.cells[row] {
		if c.cont {
			continue
		}
		if c.r == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(c.r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Render draws the grid with styles, marking the cursor cell in reverse video.
func (s *Screen) Render() string {
	lines := make([]string, s.height)
	for row := range s.cells {
		lines[row] = s.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) renderRow(row int) string {
	cells := s.cells[row]
	last := len(cells) - 1
	for last >= 0 && cells[last].r == 0 && !cells[last].cont {
		last--
	}
	cursorHere := s.cursorVisible && s.cursorRow == row && s.cursorCol >= 0 && s.cursorCol < s.width
	if cursorHere && s.cursorCol > last {
		last = s.cursorCol
	}

	var sb strings.Builder
	var run strings.Builder
	runPen := penText
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(runPen.style().Render(run.String()))
			run.Reset()
		}
	}
	for col := 0; col <= last; col++ {
		c := cells[col]
		if c.cont {
			continue
		}
		r := c.r
		if r == 0 {
			r = ' '
		}
		if cursorHere && col == s.cursorCol {
			flush()
			sb.WriteString(cursorStyle.Render(string(r)))
			continue
		}
		if c.pen != runPen {
			flush()
			runPen = c.pen
		}
		run.WriteRune(r)
	}
	flush()
	return sb.String()
}

// ansiTerminal drives a real terminal with cursor-addressed escape sequences.
type ansiTerminal struct {
	out *termenv.Output
}

func newANSITerminal(w io.Writer) *ansiTerminal {
	return &ansiTerminal{out: termenv.NewOutput(w)}
}

func (t *ansiTerminal) WriteAt(row, col int, text string) {
	for i, line := range strings.Split(text, "\n") {
		t.out.MoveCursor(row+i+1, col+1)
		t.out.WriteString(line)
		col = 0
	}
}

func (t *ansiTerminal) SetCursor(row, col int) {
	t.out.MoveCursor(row+1, col+1)
}

func (t *ansiTerminal) ClearRegion(startRow, rowCount int) {
	for row := startRow; row < startRow+rowCount; row++ {
		t.out.MoveCursor(row+1, 1)
		t.out.ClearLine()
	}
}

// Reset clears the whole display and homes the cursor
func (t *ansiTerminal) Reset() {
	t.out.ClearScreen()
}
