package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the text layer of a PDF, page by page. Pages that fail
// to parse are skipped so a damaged document still yields whatever
// pages succeeded. Scanned image PDFs come back as an empty string.
type PDF struct{}

func (PDF) Extensions() []string { return []string{".pdf"} }

func (PDF) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %v", err)
	}

	var parts []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		text, err := pageText(reader, i)
		if err != nil {
			continue
		}
		parts = append(parts, text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// pageText isolates one page so a malformed content stream cannot take
// down the rest of the document.
func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", num, r)
		}
	}()
	page := reader.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", num)
	}
	return page.GetPlainText(nil)
}

// PageCount reports the number of pages, or 0 when the bytes are not a
// readable PDF.
func PageCount(data []byte) int {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
