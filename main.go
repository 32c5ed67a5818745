package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

//go:embed VERSION
var versionFile string

func getVersion() string {
	return strings.TrimSpace(versionFile)
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	versionFlagLong := flag.Bool("version", false, "Print version and exit")
	notesFlag := flag.String("notes", "", "Notes directory (overrides the config file)")
	debugFlag := flag.Bool("debug", false, "Write debug messages to the log file")
	editFlag := flag.String("edit", "", "Edit the note with this title and exit")
	flag.Parse()

	if *versionFlag || *versionFlagLong {
		fmt.Println("totepad version", getVersion())
		os.Exit(0)
	}

	if err := run(*notesFlag, *editFlag, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(notesDir, editTitle string, debug bool) error {
	store, notes, logFile, err := setup(notesDir, debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if editTitle = strings.TrimSpace(editTitle); editTitle != "" {
		return editDirect(store, notes, editTitle, os.Stdin, os.Stdout)
	}

	p := tea.NewProgram(newModel(store, notes), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// setup loads the config, opens the log file and loads every note.
func setup(notesDir string, debug bool) (*NoteStore, []Note, io.Closer, error) {
	var cfgErr error
	config, cfgErr = loadConfig(getConfigPath())
	if notesDir != "" {
		config.NotesPath = notesDir
	}
	applyColorConfig()

	logFile, err := setupLogger(config.LogPath, debug)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info().Str("version", getVersion()).Str("notes", config.NotesPath).Msg("starting")
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default config")
	}

	store := NewNoteStore(config.NotesPath)
	if err := store.EnsureDir(); err != nil {
		logFile.Close()
		return nil, nil, nil, err
	}
	notes, err := store.LoadAll()
	if err != nil {
		logFile.Close()
		return nil, nil, nil, err
	}
	return store, notes, logFile, nil
}
