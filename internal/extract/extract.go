// Package extract turns uploaded resume files into plain text. The engine
// only ever sees the extracted string; any failure here is surfaced to the
// caller before analysis starts.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedType is returned for file extensions outside the allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

// SupportedExtensions lists the upload extensions the extractor accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// Allowed reports whether the filename carries a supported extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// FromUpload extracts plain text from an uploaded file, dispatching on the
// filename extension. The returned text is trimmed of surrounding
// whitespace.
func FromUpload(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		text, err := fromPDF(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	case ".docx":
		text, err := fromDocx(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than losing the whole document
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

func fromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
