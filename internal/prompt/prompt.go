package prompt

import (
	"fmt"
	"strings"

	"medichat-rag/internal/models"
)

// Assemble merges the retrieved chunks and the user question into the
// grounding prompt. Chunks keep their ranked order, separated by blank
// lines. Nothing is truncated here; an over-long prompt is the
// generator's failure to report.
func Assemble(chunks []string, question, persona string) string {
	if persona == "" {
		persona = models.DefaultPersona
	}
	context := strings.Join(chunks, models.ContextSeparator)
	return fmt.Sprintf(models.GroundingPromptTemplate, persona, context, question)
}
