package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// editDirect edits a single note straight from the command line: the
// editor and then a save prompt run on the raw terminal, reading from one
// key stream. A title with no matching note creates one.
func editDirect(store *NoteStore, notes []Note, title string, in, out *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("-edit needs an interactive terminal")
	}

	note, found := Note{Title: title}, false
	for _, n := range notes {
		if strings.EqualFold(n.Title, title) {
			note, found = n, true
			break
		}
	}

	header, prompt := "MODIFY NOTE", "Save changes?"
	if !found {
		header, prompt = "CREATE NEW NOTE", "Save this note?"
	}
	lines := headerLines(header)
	lines = append(lines, instructionLine("Type your note content. Press TAB when done"), "")

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("could not enter raw mode: %w", err)
	}
	t := newANSITerminal(out)
	t.Reset()
	for row, line := range lines {
		t.WriteAt(row, 0, primaryStyle.Render(line))
	}
	keys := newKeyReader(in)
	text := EditContent(keys, t, len(lines), note.Content, !found)
	promptRow := len(lines) + editorRows + 1
	save := confirmOnTerminal(keys, t, promptRow, newDecisionMenu(prompt, "Cancel", "Save"))
	t.SetCursor(promptRow+2, 0)
	if err := term.Restore(fd, state); err != nil {
		return fmt.Errorf("could not restore terminal: %w", err)
	}

	if !save {
		fmt.Fprintln(out, "Not saved.")
		return nil
	}

	note.Content = text
	if err := store.Save(note); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %q in %s\n", note.Title, store.Dir())
	return nil
}

// confirmOnTerminal draws menu at row and reads keys until a choice is made.
// An interrupt or a failed read counts as a refusal.
func confirmOnTerminal(keys KeySource, out TerminalOutput, row int, menu decisionMenu) bool {
	for {
		out.ClearRegion(row, 2)
		out.WriteAt(row, 0, strings.TrimSuffix(menu.View(), "\n"))
		k, err := keys.ReadKey()
		if err != nil {
			logger.Debug().Err(err).Msg("key input closed, not saving")
			return false
		}
		if k.Kind == KeyInterrupt {
			return false
		}
		if decided, confirmed := menu.Update(msgFromKey(k)); decided {
			return confirmed
		}
	}
}
