package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type wordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	text string
}

// UnmarshalXML collects every text element of a run in document order. A run
// can hold multiple t elements, and tab/break elements separate words that
// would otherwise glue together.
func (r *wordRun) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var builder strings.Builder

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				builder.WriteString(s)
			case "tab":
				builder.WriteString("\t")
			case "br", "cr":
				builder.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name == start.Name {
				r.text = builder.String()
				return nil
			}
		}
	}
}

// extractDOCX pulls raw paragraph text out of the WordprocessingML body,
// discarding all styling. One output line per paragraph.
func extractDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a zip archive: %v", ErrCorrupt, err)
	}

	var documentFile *zip.File
	for _, file := range zipReader.File {
		if file.Name == "word/document.xml" {
			documentFile = file
			break
		}
	}
	if documentFile == nil {
		return "", fmt.Errorf("%w: word/document.xml missing", ErrCorrupt)
	}

	xmlFile, err := documentFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer xmlFile.Close()

	xmlData, err := io.ReadAll(xmlFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var doc wordDocument
	if err := xml.Unmarshal(xmlData, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var builder strings.Builder
	for _, para := range doc.Body.Paragraphs {
		for _, run := range para.Runs {
			builder.WriteString(run.text)
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
