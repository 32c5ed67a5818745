package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

type screen int

const (
	mainMenuScreen screen = iota
	notesScreen
	titleScreen
	editScreen
	saveScreen
	selectScreen
	viewScreen
	deleteScreen
	calendarScreen
)

type selectPurpose int

const (
	selectView selectPurpose = iota
	selectModify
	selectDelete
)

const (
	defaultWidth  = 80
	errorDuration = 2 * time.Second
)

var (
	mainMenuOptions  = []string{"Notes", "Calendar", "Exit"}
	notesMenuOptions = []string{"Create", "View", "Modify", "Delete", "Back"}
)

// clearErrorMsg hides the error banner it was scheduled for
type clearErrorMsg struct {
	id int
}

type model struct {
	store  *NoteStore
	notes  []Note
	screen screen
	width  int
	height int

	menu    arrowMenu
	purpose selectPurpose
	index   int // note picked on the select screen

	titleInput textinput.Model
	creating   bool
	title      string

	page     *Screen
	editor   *Editor
	decision decisionMenu
	pending  string

	viewer viewport.Model
	status string

	errMsg   string
	errID    int
	quitting bool
}

func newModel(store *NoteStore, notes []Note) *model {
	ti := textinput.New()
	ti.Prompt = "Title: "
	ti.PromptStyle = accentStyle
	ti.CharLimit = 100

	return &model{
		store:      store,
		notes:      notes,
		screen:     mainMenuScreen,
		menu:       newArrowMenu(mainMenuOptions...),
		titleInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) pageWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// flashError shows msg for a couple of seconds
func (m *model) flashError(msg string) tea.Cmd {
	m.errMsg = msg
	m.errID++
	id := m.errID
	return tea.Tick(errorDuration, func(time.Time) tea.Msg {
		return clearErrorMsg{id: id}
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.page != nil && (m.screen == editScreen || m.screen == saveScreen) {
			m.page.Resize(m.pageWidth(), m.page.height)
			m.editor.Redraw()
		}
		if m.screen == viewScreen {
			m.resizeViewer()
		}
		return m, nil
	case clearErrorMsg:
		if msg.id == m.errID {
			m.errMsg = ""
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case mainMenuScreen:
			return m.updateMainMenu(msg)
		case notesScreen:
			return m.updateNotesMenu(msg)
		case titleScreen:
			return m.updateTitle(msg)
		case editScreen:
			return m.updateEdit(msg)
		case saveScreen:
			return m.updateSave(msg)
		case selectScreen:
			return m.updateSelect(msg)
		case viewScreen:
			return m.updateView(msg)
		case deleteScreen:
			return m.updateDelete(msg)
		case calendarScreen:
			m.openMainMenu()
			return m, nil
		}
	}

	if m.screen == titleScreen {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) openMainMenu() {
	m.screen = mainMenuScreen
	m.menu = newArrowMenu(mainMenuOptions...)
}

func (m *model) openNotesMenu() {
	m.screen = notesScreen
	m.menu = newArrowMenu(notesMenuOptions...)
	m.page, m.editor = nil, nil
	m.status = ""
}

func (m *model) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choice, ok := m.menu.Update(msg)
	if !ok {
		return m, nil
	}
	switch choice {
	case 0:
		m.openNotesMenu()
	case 1:
		m.screen = calendarScreen
	default:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) updateNotesMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choice, ok := m.menu.Update(msg)
	if !ok {
		return m, nil
	}
	switch choice {
	case 0:
		m.screen = titleScreen
		m.titleInput.Reset()
		return m, m.titleInput.Focus()
	case 1, 2, 3:
		if len(m.notes) == 0 {
			return m, nil
		}
		m.purpose = selectPurpose(choice - 1)
		m.screen = selectScreen
		m.menu = newArrowMenu(m.titles()...)
	default:
		m.openMainMenu()
	}
	return m, nil
}

func (m *model) titles() []string {
	titles := make([]string, len(m.notes))
	for i, n := range m.notes {
		titles[i] = n.Title
	}
	return titles
}

// titleTaken reports whether title would clash with an existing note,
// ignoring case and the characters replaced in file names.
func (m *model) titleTaken(title string) bool {
	want := sanitizeFilename(title)
	for _, n := range m.notes {
		if strings.EqualFold(sanitizeFilename(n.Title), want) {
			return true
		}
	}
	return false
}

func (m *model) updateTitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.titleInput.Blur()
		m.openNotesMenu()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		m.titleInput.Blur()
		if title == "" || m.titleTaken(title) {
			m.openNotesMenu()
			return m, m.flashError("Title empty or already exists!")
		}
		m.creating = true
		m.title = title
		m.startEditor("CREATE NEW NOTE", "Type your note content. Press TAB when done", "Title: "+title, "", true)
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// startEditor lays out the edit page and opens an editor session below
// its header lines.
func (m *model) startEditor(header, instruction, titleLine, seed string, promptMode bool) {
	lines := headerLines(header)
	lines = append(lines, instructionLine(instruction), "")
	chromeRows := len(lines)
	if titleLine != "" {
		lines = append(lines, titleLine)
	}
	originRow := len(lines)

	m.page = newScreen(m.pageWidth(), originRow+editorRows)
	for row, line := range lines {
		if row < chromeRows {
			m.page.SetPen(penPrimary)
		} else {
			m.page.SetPen(penAccent)
		}
		m.page.WriteAt(row, 0, line)
	}
	m.page.SetPen(penText)
	m.editor = NewEditor(m.page, originRow, seed, promptMode)
	m.screen = editScreen
}

func (m *model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range keysFromMsg(msg) {
		if !m.editor.Handle(k) {
			continue
		}
		m.pending = m.editor.Text()
		m.page.SetCursorVisible(false)
		if m.creating {
			m.decision = newDecisionMenu("Save this note?", "Cancel", "Save")
		} else {
			m.decision = newDecisionMenu("Save changes?", "Cancel", "Save")
		}
		m.screen = saveScreen
		break
	}
	return m, nil
}

func (m *model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	decided, save := m.decision.Update(msg)
	if !decided {
		return m, nil
	}
	creating := m.creating
	m.creating = false
	m.openNotesMenu()
	if !save {
		return m, nil
	}

	if creating {
		n := Note{Title: m.title, Content: m.pending}
		if err := m.store.Save(n); err != nil {
			logger.Error().Err(err).Str("title", n.Title).Msg("could not save new note")
			return m, m.flashError(err.Error())
		}
		m.notes = append(m.notes, n)
		sort.Slice(m.notes, func(i, j int) bool {
			return m.notes[i].Title < m.notes[j].Title
		})
		return m, nil
	}

	updated := m.notes[m.index]
	updated.Content = m.pending
	if err := m.store.Save(updated); err != nil {
		logger.Error().Err(err).Str("title", updated.Title).Msg("could not save note")
		return m, m.flashError(err.Error())
	}
	m.notes[m.index] = updated
	return m, nil
}

func (m *model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.openNotesMenu()
		return m, nil
	}
	choice, ok := m.menu.Update(msg)
	if !ok {
		return m, nil
	}
	m.index = choice
	n := m.notes[choice]
	switch m.purpose {
	case selectView:
		m.openViewer(n)
	case selectModify:
		m.creating = false
		m.startEditor("MODIFY NOTE", "Edit the note content. Press TAB when done", "Title: "+n.Title, n.Content, false)
	case selectDelete:
		m.decision = newDecisionMenu(fmt.Sprintf("Delete '%s'?", n.Title), "Cancel", "Delete")
		m.screen = deleteScreen
	}
	return m, nil
}

func (m *model) viewerSize() (int, int) {
	// header box, blank line and the footer take the rest of the screen
	height := m.height - len(headerLines("")) - 3
	if height < 5 {
		height = editorRows
	}
	return m.pageWidth(), height
}

func (m *model) openViewer(n Note) {
	width, height := m.viewerSize()
	m.viewer = viewport.New(width, height)
	m.viewer.SetContent(wordwrap.String(n.Content, width))
	m.status = ""
	m.screen = viewScreen
}

func (m *model) resizeViewer() {
	width, height := m.viewerSize()
	m.viewer.Width, m.viewer.Height = width, height
	m.viewer.SetContent(wordwrap.String(m.notes[m.index].Content, width))
}

func (m *model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd
	case "c":
		n := m.notes[m.index]
		if err := clipboard.WriteAll(n.Content); err != nil {
			logger.Warn().Err(err).Str("title", n.Title).Msg("clipboard unavailable")
			return m, m.flashError("Could not copy: " + err.Error())
		}
		m.status = "Copied to clipboard"
		return m, nil
	}
	m.openNotesMenu()
	return m, nil
}

func (m *model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	decided, confirmed := m.decision.Update(msg)
	if !decided {
		return m, nil
	}
	m.openNotesMenu()
	if !confirmed {
		return m, nil
	}
	title := m.notes[m.index].Title
	if err := m.store.Delete(title); err != nil {
		logger.Error().Err(err).Str("title", title).Msg("could not delete note")
		return m, m.flashError(err.Error())
	}
	m.notes = append(m.notes[:m.index], m.notes[m.index+1:]...)
	return m, nil
}

func (m model) errorView() string {
	if m.errMsg == "" {
		return ""
	}
	return "\n" + errorStyle.Render("[ERROR] "+m.errMsg) + "\n"
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	switch m.screen {
	case mainMenuScreen:
		sb.WriteString(drawHeader("TOTEPAD MAIN MENU"))
		sb.WriteString(m.menu.View(m.width))
	case notesScreen:
		sb.WriteString(drawHeader("NOTES LIST"))
		if len(m.notes) == 0 {
			sb.WriteString(textStyle.Render("(No notes found)") + "\n")
		}
		for _, n := range m.notes {
			sb.WriteString(textStyle.Render("- "+n.Title) + "\n")
		}
		sb.WriteString("\n" + textStyle.Render("--- Actions ---") + "\n")
		sb.WriteString(m.menu.View(m.width))
	case titleScreen:
		sb.WriteString(drawHeader("CREATE NEW NOTE"))
		sb.WriteString(drawInstruction("Type your note content. Press TAB when done"))
		sb.WriteString(m.titleInput.View() + "\n")
	case editScreen:
		sb.WriteString(m.page.Render() + "\n")
	case saveScreen, deleteScreen:
		if m.screen == saveScreen {
			sb.WriteString(m.page.Render() + "\n")
		} else {
			sb.WriteString(drawHeader("DELETE NOTE"))
		}
		sb.WriteString("\n" + m.decision.View())
	case selectScreen:
		switch m.purpose {
		case selectView:
			sb.WriteString(drawHeader("VIEW NOTE"))
			sb.WriteString(drawInstruction("Use arrow keys to select a note. Press Enter to view"))
		case selectModify:
			sb.WriteString(drawHeader("SELECT NOTE TO MODIFY"))
			sb.WriteString(drawInstruction("Use arrow keys to select a note. Press Enter to edit"))
		case selectDelete:
			sb.WriteString(drawHeader("SELECT NOTE TO DELETE"))
			sb.WriteString(drawInstruction("Use arrow keys to select a note. Press Enter to delete"))
		}
		sb.WriteString(m.menu.View(m.width))
	case viewScreen:
		sb.WriteString(drawHeader(m.notes[m.index].Title))
		sb.WriteString(m.viewer.View() + "\n\n")
		sb.WriteString(textStyle.Render("(↑/↓ scroll, c copy, any other key to return)"))
		if m.status != "" {
			sb.WriteString("  " + highlightStyle.Render(m.status))
		}
		sb.WriteString("\n")
	case calendarScreen:
		sb.WriteString(drawHeader("CALENDAR"))
		sb.WriteString(drawInstruction("Press any key to return."))
		sb.WriteString(textStyle.Render("Under construction") + "\n")
	}
	sb.WriteString(m.errorView())
	return sb.String()
}
