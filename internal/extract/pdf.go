package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF walks pages in strictly ascending order, joining pages with
// newlines. Page order is a correctness invariant for downstream consumers,
// so pages are never fetched concurrently or reordered.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: pdf parser panic: %v", ErrCorrupt, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var builder strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, perr := page.GetPlainText(nil)
		if perr != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrCorrupt, i, perr)
		}

		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
