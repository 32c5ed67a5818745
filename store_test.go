package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNoteStore_SaveLoadDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Notes")
	s := NewNoteStore(dir)
	if err := s.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}

	for _, n := range []Note{
		{Title: "groceries", Content: "eggs\nmilk"},
		{Title: "Anniversary", Content: "book dinner"},
	} {
		if err := s.Save(n); err != nil {
			t.Fatalf("Save(%q): %v", n.Title, err)
		}
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	want := []Note{
		{Title: "Anniversary", Content: "book dinner"},
		{Title: "groceries", Content: "eggs\nmilk"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadAll mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete("groceries"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if diff := cmp.Diff(want[:1], got); diff != "" {
		t.Fatalf("after delete (-want +got):\n%s", diff)
	}
}

func TestNoteStore_SaveOverwrites(t *testing.T) {
	s := NewNoteStore(t.TempDir())
	if err := s.Save(Note{Title: "todo", Content: "old"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(Note{Title: "todo", Content: "new"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), "todo.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("file=%q, want %q", data, "new")
	}
}

func TestNoteStore_LoadAllSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "folder.txt"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "real.txt"), []byte("y"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewNoteStore(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if diff := cmp.Diff([]Note{{Title: "real", Content: "y"}}, got); diff != "" {
		t.Fatalf("LoadAll mismatch (-want +got):\n%s", diff)
	}
}

func TestNoteStore_LoadAllMissingDir(t *testing.T) {
	if _, err := NewNoteStore(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Fatalf("LoadAll on a missing directory succeeded")
	}
}

func TestNoteStore_DeleteMissingIsNotAnError(t *testing.T) {
	if err := NewNoteStore(t.TempDir()).Delete("ghost"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestNoteStore_SaveUsesSanitizedName(t *testing.T) {
	s := NewNoteStore(t.TempDir())
	if err := s.Save(Note{Title: "a/b: c?", Content: "z"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "a_b_ c_.txt")); err != nil {
		t.Fatalf("sanitized file missing: %v", err)
	}
	if err := s.Delete("a/b: c?"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "a_b_ c_.txt")); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"plain title":   "plain title",
		`<>:"/\|?*`:     "_________",
		"tab\there":     "tab_here",
		"ünïcode stays": "ünïcode stays",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q)=%q, want %q", in, got, want)
		}
	}
}
