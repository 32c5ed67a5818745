package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const headerBoxWidth = 42

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
}

var menuKeys = menuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
}

// headerLines returns the boxed title drawn at the top of every screen
func headerLines(title string) []string {
	leftPadding := max(0, (headerBoxWidth-runewidth.StringWidth(title))/2)
	rightPadding := max(0, headerBoxWidth-runewidth.StringWidth(title)-leftPadding)
	border := strings.Repeat("=", headerBoxWidth+4)
	blank := "=" + strings.Repeat(" ", headerBoxWidth+2) + "="
	return []string{
		border,
		blank,
		fmt.Sprintf("= %s%s%s =", strings.Repeat(" ", leftPadding), title, strings.Repeat(" ", rightPadding)),
		blank,
		border,
		"",
	}
}

func drawHeader(title string) string {
	return primaryStyle.Render(strings.Join(headerLines(title), "\n")) + "\n"
}

func instructionLine(message string) string {
	return fmt.Sprintf("~ %s ~", message)
}

func drawInstruction(message string) string {
	return primaryStyle.Render(instructionLine(message)) + "\n\n"
}

// arrowMenu is a vertical selection list that wraps around at both ends.
type arrowMenu struct {
	options  []string
	selected int
}

func newArrowMenu(options ...string) arrowMenu {
	return arrowMenu{options: options}
}

// Update moves the selection and reports the chosen index on Enter
func (m *arrowMenu) Update(msg tea.KeyMsg) (int, bool) {
	if len(m.options) == 0 {
		return 0, false
	}
	switch {
	case key.Matches(msg, menuKeys.Up):
		m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
	case key.Matches(msg, menuKeys.Down):
		m.selected = (m.selected + 1) % len(m.options)
	case key.Matches(msg, menuKeys.Choose):
		return m.selected, true
	}
	return 0, false
}

// View renders the options, truncating long ones to width when width > 0
func (m arrowMenu) View(width int) string {
	var sb strings.Builder
	for i, option := range m.options {
		if width > 8 {
			option = runewidth.Truncate(option, width-8, "…")
		}
		if i == m.selected {
			sb.WriteString(highlightStyle.Render(fmt.Sprintf("> [ %s ]", option)))
		} else {
			sb.WriteString(textStyle.Render("    " + option))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// decisionMenu asks a yes/no question with the negative answer on the left,
// selected by default.
type decisionMenu struct {
	prompt   string
	options  [2]string
	selected int
}

func newDecisionMenu(prompt, left, right string) decisionMenu {
	return decisionMenu{prompt: prompt, options: [2]string{left, right}}
}

// Update reports decided on Enter, with confirmed true only for the right option
func (d *decisionMenu) Update(msg tea.KeyMsg) (decided, confirmed bool) {
	switch {
	case key.Matches(msg, menuKeys.Left):
		d.selected = 0
	case key.Matches(msg, menuKeys.Right):
		d.selected = 1
	case key.Matches(msg, menuKeys.Choose):
		return true, d.selected == 1
	}
	return false, false
}

func (d decisionMenu) View() string {
	var sb strings.Builder
	sb.WriteString(textStyle.Render(d.prompt))
	sb.WriteString("\n")
	for i, option := range d.options {
		switch {
		case i != d.selected:
			sb.WriteString(textStyle.Render(fmt.Sprintf("  %s       ", option)))
		case i == 0:
			sb.WriteString(errorStyle.Render(fmt.Sprintf("[ %s ]     ", option)))
		default:
			sb.WriteString(highlightStyle.Render(fmt.Sprintf("[ %s ]     ", option)))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
