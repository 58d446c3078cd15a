package hub

import (
	"fmt"
	"html"
	"strings"

	"medichat-rag/internal/helper"
)

const previewHeight = 600

// AnswerPage renders a standalone HTML page: the generated answer
// followed by an inline preview of every document in the collection's
// bucket, ready for the browser surface.
func (l *Library) AnswerPage(collection, answerMarkdown string) (string, error) {
	body, err := helper.RenderMarkdown(answerMarkdown)
	if err != nil {
		return "", fmt.Errorf("rendering answer: %v", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	b.WriteString("<h2>MediChat Pro — Answer</h2>\n")
	b.WriteString(body)
	for _, entry := range l.ListCollection(collection) {
		b.WriteString(fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(entry.Name)))
		b.WriteString(helper.PreviewHTML(entry.Data, previewHeight))
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
