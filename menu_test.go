package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestArrowMenu_WrapsAround(t *testing.T) {
	m := newArrowMenu("a", "b", "c")

	m.Update(upKey)
	if choice, ok := m.Update(enterKey); !ok || choice != 2 {
		t.Fatalf("up from top chose (%d, %v), want (2, true)", choice, ok)
	}

	m.Update(downKey)
	if choice, ok := m.Update(enterKey); !ok || choice != 0 {
		t.Fatalf("down from bottom chose (%d, %v), want (0, true)", choice, ok)
	}
}

func TestArrowMenu_VimKeys(t *testing.T) {
	m := newArrowMenu("a", "b", "c")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if choice, _ := m.Update(enterKey); choice != 1 {
		t.Fatalf("choice=%d, want 1", choice)
	}
}

func TestArrowMenu_EmptyNeverChooses(t *testing.T) {
	m := newArrowMenu()
	if _, ok := m.Update(enterKey); ok {
		t.Fatalf("empty menu reported a choice")
	}
}

func TestArrowMenu_ViewMarksSelection(t *testing.T) {
	m := newArrowMenu("Notes", "Calendar")
	m.Update(downKey)
	view := m.View(0)
	if !strings.Contains(view, "> [ Calendar ]") {
		t.Fatalf("selected option not marked:\n%s", view)
	}
	if !strings.Contains(view, "    Notes") {
		t.Fatalf("unselected option not indented:\n%s", view)
	}
}

func TestArrowMenu_ViewTruncatesLongOptions(t *testing.T) {
	m := newArrowMenu(strings.Repeat("x", 50))
	view := m.View(20)
	if !strings.Contains(view, "…") || strings.Contains(view, strings.Repeat("x", 13)) {
		t.Fatalf("long option not truncated:\n%s", view)
	}
}

func TestDecisionMenu_DefaultsToLeft(t *testing.T) {
	d := newDecisionMenu("Save?", "Cancel", "Save")
	decided, confirmed := d.Update(enterKey)
	if !decided || confirmed {
		t.Fatalf("got (%v, %v), want (true, false)", decided, confirmed)
	}
}

func TestDecisionMenu_RightConfirms(t *testing.T) {
	d := newDecisionMenu("Save?", "Cancel", "Save")
	if decided, _ := d.Update(rightKey); decided {
		t.Fatalf("arrow key decided")
	}
	if !strings.Contains(d.View(), "[ Save ]") {
		t.Fatalf("Save not highlighted:\n%s", d.View())
	}
	d.Update(leftKey)
	d.Update(rightKey)
	if decided, confirmed := d.Update(enterKey); !decided || !confirmed {
		t.Fatalf("got (%v, %v), want (true, true)", decided, confirmed)
	}
}

func TestHeaderLines_CentersTitle(t *testing.T) {
	lines := headerLines("NOTES LIST")
	if len(lines[0]) != len(lines[2]) {
		t.Fatalf("title row width %d, border width %d", len(lines[2]), len(lines[0]))
	}
	if !strings.Contains(lines[2], "NOTES LIST") {
		t.Fatalf("title row %q missing title", lines[2])
	}
}
