package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"medichat-rag/internal/config"
)

// Generator is the text-in/text-out boundary to the hosted chat model.
// It is constructed once at startup and handed to every pipeline run.
// It knows nothing about retrieval or indexing.
type Generator struct {
	llm *openai.LLM
}

// NewGenerator fails when the credential is absent; callers treat a nil
// generator as "answering disabled" and short-circuit with a message
// instead of crashing.
func NewGenerator(cfg *config.LLMConfig) (*Generator, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("chat model key is missing, set EURI_API_KEY")
	}
	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing chat LLM: %v", err)
	}
	return &Generator{llm: client}, nil
}

// Generate sends the prompt in a single synchronous call. No retries:
// network, quota, and malformed-response failures propagate to the
// caller as-is.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}
	res, err := g.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return res.Choices[0].Content, nil
}
