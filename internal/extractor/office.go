package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/tealeg/xlsx"
)

// DOCX extracts paragraph text from Word documents.
type DOCX struct{}

func (DOCX) Extensions() []string { return []string{".docx"} }

func (DOCX) Extract(data []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %v", err)
	}
	defer r.Close()

	var parts []string
	for _, p := range strings.Split(r.Editable().GetContent(), "\n") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(p))
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// XLSX flattens every sheet into tab-separated rows, one sheet heading
// per section.
type XLSX struct{}

func (XLSX) Extensions() []string { return []string{".xlsx"} }

func (XLSX) Extract(data []byte) (string, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return "", fmt.Errorf("open xlsx: %v", err)
	}

	var text strings.Builder
	for _, sheet := range f.Sheets {
		text.WriteString(fmt.Sprintf("Sheet: %s\n", sheet.Name))
		for _, row := range sheet.Rows {
			for _, cell := range row.Cells {
				text.WriteString(cell.String() + "\t")
			}
			text.WriteString("\n")
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// Plaintext passes .txt files through unchanged.
type Plaintext struct{}

func (Plaintext) Extensions() []string { return []string{".txt"} }

func (Plaintext) Extract(data []byte) (string, error) {
	return strings.TrimSpace(string(data)), nil
}
