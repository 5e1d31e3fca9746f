package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// Document extraction errors
var (
	ErrNotFound          = errors.New("document not found")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrExtractionFailed  = errors.New("text extraction failed")
)

// DocExtractor pulls raw text out of uploaded FNOL documents. Plain text
// and PDF are supported; anything else is rejected before the pipeline runs.
type DocExtractor struct{}

// NewDocExtractor creates a document text extractor
func NewDocExtractor() *DocExtractor {
	return &DocExtractor{}
}

// Extract reads the document at path and returns its raw text. The format
// is chosen by file extension, matching how uploads are screened.
func (d *DocExtractor) Extract(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return d.extractText(path)
	case ".pdf":
		return d.extractPDF(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// extractText reads a plain-text document. Files that are not valid UTF-8
// are decoded as Latin-1, which maps every byte to some rune.
func (d *DocExtractor) extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrExtractionFailed, path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %v", ErrExtractionFailed, path, err)
	}
	return string(decoded), nil
}

// extractPDF extracts plain text from every page of a PDF, pages joined
// by newlines the way the extraction rules expect.
func (d *DocExtractor) extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrExtractionFailed, path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, path, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, path, err)
	}
	return buf.String(), nil
}
