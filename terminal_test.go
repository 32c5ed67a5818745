package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestScreen_WriteAtClips(t *testing.T) {
	s := newScreen(5, 2)
	s.WriteAt(0, 3, "abcdef")
	s.WriteAt(5, 0, "off grid")
	s.WriteAt(-1, 0, "above")
	if got := s.Line(0); got != "   ab" {
		t.Fatalf("row 0=%q, want %q", got, "   ab")
	}
	if got := s.Line(1); got != "" {
		t.Fatalf("row 1=%q, want empty", got)
	}
}

func TestScreen_WriteAtFollowsNewlines(t *testing.T) {
	s := newScreen(10, 3)
	s.WriteAt(0, 4, "ab\ncd")
	if s.Line(0) != "    ab" || s.Line(1) != "cd" {
		t.Fatalf("rows=%q, %q", s.Line(0), s.Line(1))
	}
}

func TestScreen_WideRunesFillTwoCells(t *testing.T) {
	s := newScreen(5, 1)
	s.WriteAt(0, 0, "日b語")
	if got := s.Line(0); got != "日b語" {
		t.Fatalf("row 0=%q, want %q", got, "日b語")
	}
	s.WriteAt(0, 4, "本")
	if got := s.Line(0); got != "日b語" {
		t.Fatalf("wide rune past the edge written: %q", s.Line(0))
	}
}

func TestScreen_ClearRegion(t *testing.T) {
	s := newScreen(4, 4)
	for row := 0; row < 4; row++ {
		s.WriteAt(row, 0, "xxxx")
	}
	s.ClearRegion(1, 2)
	want := []string{"xxxx", "", "", "xxxx"}
	for row, w := range want {
		if got := s.Line(row); got != w {
			t.Fatalf("row %d=%q, want %q", row, got, w)
		}
	}
	s.ClearRegion(3, 100)
	if got := s.Line(3); got != "" {
		t.Fatalf("row 3=%q, want cleared", got)
	}
}

func TestScreen_ResizeKeepsContent(t *testing.T) {
	s := newScreen(6, 2)
	s.WriteAt(0, 0, "abcdef")
	s.Resize(3, 3)
	if got := s.Line(0); got != "abc" {
		t.Fatalf("row 0=%q, want %q", got, "abc")
	}
	s.WriteAt(2, 0, "zz")
	if got := s.Line(2); got != "zz" {
		t.Fatalf("row 2=%q, want %q", got, "zz")
	}
}

func TestScreen_RenderIncludesCursorCell(t *testing.T) {
	s := newScreen(10, 2)
	s.WriteAt(0, 0, "hi")
	s.SetCursor(1, 3)
	lines := strings.Split(s.Render(), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d rows, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "hi") {
		t.Fatalf("row 0=%q, want it to contain text", lines[0])
	}
	if !strings.HasPrefix(lines[1], "   ") {
		t.Fatalf("row 1=%q, want padding up to the cursor", lines[1])
	}

	s.SetCursorVisible(false)
	if got := strings.Split(s.Render(), "\n")[1]; got != "" {
		t.Fatalf("hidden cursor still rendered: %q", got)
	}
}

func TestANSITerminal_WritesEscapes(t *testing.T) {
	var buf bytes.Buffer
	term := newANSITerminal(&buf)
	term.ClearRegion(2, 1)
	term.WriteAt(2, 0, "> hi")
	term.SetCursor(2, 4)

	got := buf.String()
	for _, want := range []string{"\x1b[3;1H", "\x1b[2K", "> hi", "\x1b[3;5H"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q missing %q", got, want)
		}
	}
}
