package helper

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// GenerateUUID creates a random unique UUID string
func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %v", err)
	}
	return id.String(), nil
}

// HumanSize renders a byte count as B/KB/MB/GB/TB.
func HumanSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%0.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%0.2f TB", size)
}

// RenderMarkdown converts a model answer to HTML for the presentation
// surface.
func RenderMarkdown(text string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PreviewHTML embeds a PDF in an <object> tag using base64, for inline
// browser preview.
func PreviewHTML(pdfBytes []byte, height int) string {
	b64 := base64.StdEncoding.EncodeToString(pdfBytes)
	return fmt.Sprintf(`<object data="data:application/pdf;base64,%s" type="application/pdf" width="100%%" height="%d">
    <p>PDF preview not available in your browser. Use the download button below.</p>
</object>`, b64, height)
}

// PrettyPrint dumps v as indented JSON to stdout, for the debug views
// in cmd.
func PrettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("could not pretty print")
		return
	}
	fmt.Println(string(b))
}
