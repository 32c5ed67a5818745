package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

const noteExtension = ".txt"

// Note is a titled piece of text. The title doubles as the file name.
type Note struct {
	Title   string
	Content string
}

// NoteStore keeps one text file per note in a directory.
type NoteStore struct {
	dir string
}

func NewNoteStore(dir string) *NoteStore {
	return &NoteStore{dir: dir}
}

// Dir returns the directory notes are kept in
func (s *NoteStore) Dir() string {
	return s.dir
}

// EnsureDir creates the notes directory if it does not exist
func (s *NoteStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create notes directory: %w", err)
	}
	return nil
}

// LoadAll reads every note in the directory, sorted by title. Files that
// cannot be read are logged and skipped.
func (s *NoteStore) LoadAll() ([]Note, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error loading notes: %w", err)
	}

	var notes []Note
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != noteExtension {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("skipping unreadable note")
			continue
		}
		notes = append(notes, Note{
			Title:   strings.TrimSuffix(entry.Name(), noteExtension),
			Content: string(data),
		})
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Title < notes[j].Title
	})
	return notes, nil
}

func (s *NoteStore) path(title string) string {
	return filepath.Join(s.dir, sanitizeFilename(title)+noteExtension)
}

// Save writes the note, replacing any earlier version
func (s *NoteStore) Save(n Note) error {
	if err := os.WriteFile(s.path(n.Title), []byte(n.Content), 0644); err != nil {
		return fmt.Errorf("failed to save %q: %w", n.Title, err)
	}
	logger.Info().Str("title", n.Title).Int("bytes", len(n.Content)).Msg("note saved")
	return nil
}

// Delete removes the note's file. Deleting a note that is not on disk is
// not an error.
func (s *NoteStore) Delete(title string) error {
	err := os.Remove(s.path(title))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete failed for %q: %w", title, err)
	}
	logger.Info().Str("title", title).Msg("note deleted")
	return nil
}

// sanitizeFilename replaces characters no common filesystem accepts in a
// file name with underscores.
func sanitizeFilename(title string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, title)
}
