package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocExtractor_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claim.txt")
	content := "POLICY NUMBER\nNIC-MH-2024-08742\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := NewDocExtractor()
	got, err := d.Extract(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != content {
		t.Errorf("Expected exact text round trip, got %q", got)
	}
}

func TestDocExtractor_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claim.txt")
	// "Pri\xe9" is not valid UTF-8; 0xE9 decodes to é under Latin-1
	if err := os.WriteFile(path, []byte{'P', 'r', 'i', 0xE9}, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := NewDocExtractor()
	got, err := d.Extract(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "Prié" {
		t.Errorf("Expected Latin-1 decoded text, got %q", got)
	}
}

func TestDocExtractor_MissingFile(t *testing.T) {
	d := NewDocExtractor()
	_, err := d.Extract(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDocExtractor_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claim.docx")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := NewDocExtractor()
	_, err := d.Extract(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), ".docx") {
		t.Errorf("Expected extension in error, got %v", err)
	}
}

func TestDocExtractor_BrokenPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claim.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	d := NewDocExtractor()
	_, err := d.Extract(path)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("Expected ErrExtractionFailed, got %v", err)
	}
}
