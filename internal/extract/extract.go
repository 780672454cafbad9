// Package extract turns uploaded resume bytes into plain text.
//
// Dispatch is driven by the declared file extension, never by sniffing:
// an unsupported extension is rejected before any byte of content is read.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupported means the declared extension is not one we can extract.
	ErrUnsupported = errors.New("unsupported file type")

	// ErrCorrupt means the underlying format parser rejected the document.
	ErrCorrupt = errors.New("corrupt document")

	// ErrNoText means extraction succeeded but produced no usable text.
	ErrNoText = errors.New("no extractable text")
)

// ExtFromFilename returns the lower-cased extension of an uploaded filename,
// including the leading dot (".pdf"). Empty when the name has no extension.
func ExtFromFilename(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Extract produces trimmed plain text from raw file bytes.
//
// Whatever the underlying parser reports, a result that is empty after
// trimming is classified as ErrNoText rather than returned as success.
func Extract(data []byte, ext string) (string, error) {
	var (
		text string
		err  error
	)

	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".txt":
		text, err = extractTXT(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}
