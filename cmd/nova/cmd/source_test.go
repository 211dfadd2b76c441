package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNovaFileRejectsWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.txt")
	if err := os.WriteFile(path, []byte("function void main() {}"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := loadNovaFile(path); err == nil {
		t.Fatal("expected an error for a non-.nova extension")
	}
}

func TestLoadNovaFileRejectsMissingFile(t *testing.T) {
	if _, err := loadNovaFile(filepath.Join(t.TempDir(), "missing.nova")); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestLoadNovaFileReadsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.nova")
	want := "function void main() { print(1); }"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := loadNovaFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
