package rag

import (
	"context"
	"fmt"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"medichat-rag/internal/extractor"
	"medichat-rag/internal/index"
	"medichat-rag/internal/models"
	"medichat-rag/internal/prompt"
	"medichat-rag/internal/retriever"
	"medichat-rag/internal/splitter"
)

// Generator is the answer-producing boundary the pipeline calls last.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options tune one pipeline; zero values fall back to the defaults the
// grounding prompt was written for. ChunkOverlap is a pointer because
// zero overlap is a legitimate setting; nil means "use the default".
type Options struct {
	ChunkSize    int
	ChunkOverlap *int
	TopK         int
	Persona      string
}

// Pipeline runs a full submission to completion: extract, chunk, build
// the index, retrieve, assemble the prompt, generate. The index it
// builds is ephemeral; every submission starts from scratch.
type Pipeline struct {
	backends     *extractor.Registry
	embed        chromem.EmbeddingFunc
	generator    Generator
	chunkSize    int
	chunkOverlap int
	topK         int
	persona      string
}

func NewPipeline(backends *extractor.Registry, embed chromem.EmbeddingFunc, generator Generator, opts Options) *Pipeline {
	p := &Pipeline{
		backends:     backends,
		embed:        embed,
		generator:    generator,
		chunkSize:    opts.ChunkSize,
		chunkOverlap: splitter.DefaultChunkOverlap,
		topK:         opts.TopK,
		persona:      opts.Persona,
	}
	if p.chunkSize <= 0 {
		p.chunkSize = splitter.DefaultChunkSize
	}
	if opts.ChunkOverlap != nil && *opts.ChunkOverlap >= 0 {
		p.chunkOverlap = *opts.ChunkOverlap
	}
	if p.topK <= 0 {
		p.topK = retriever.DefaultTopK
	}
	return p
}

// ExtractBatch fills in each document's text. Unreadable documents end
// up with empty text rather than failing the batch; only the aggregate
// matters to callers.
func (p *Pipeline) ExtractBatch(batch []models.Document) []models.Document {
	out := make([]models.Document, len(batch))
	for i, doc := range batch {
		text, err := p.backends.Extract(doc.Name, doc.Data)
		if err != nil {
			log.Warn().Err(err).Str("file", doc.Name).Msg("Extraction failed, treating as empty")
			text = ""
		}
		doc.Text = text
		out[i] = doc
	}
	return out
}

// ChunkBatch splits every extracted text into overlapping chunks tagged
// with their source document.
func (p *Pipeline) ChunkBatch(batch []models.Document) []models.Chunk {
	var chunks []models.Chunk
	for _, doc := range batch {
		for _, content := range splitter.Split(doc.Text, p.chunkSize, p.chunkOverlap) {
			chunks = append(chunks, models.Chunk{Content: content, Source: doc.Name})
		}
	}
	return chunks
}

// BuildIndex runs extraction and chunking over the batch and builds the
// embedding index for it.
func (p *Pipeline) BuildIndex(ctx context.Context, batch []models.Document) (*index.Index, error) {
	extracted := p.ExtractBatch(batch)

	withText := 0
	for _, doc := range extracted {
		if doc.Text != "" {
			withText++
		}
	}
	if withText == 0 {
		return nil, ErrNoExtractableText
	}

	chunks := p.ChunkBatch(extracted)
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}
	log.Debug().Int("documents", withText).Int("chunks", len(chunks)).Msg("Building index")

	idx, err := index.Build(ctx, p.embed, chunks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuild, err)
	}
	return idx, nil
}

// Ask answers the question from the batch: the single entry point the
// upload surface calls per submission.
func (p *Pipeline) Ask(ctx context.Context, batch []models.Document, question string) (*models.Answer, error) {
	if p.generator == nil {
		return nil, ErrModelUnavailable
	}

	idx, err := p.BuildIndex(ctx, batch)
	if err != nil {
		return nil, err
	}

	retrieved, err := retriever.Retrieve(ctx, idx, question, p.topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}

	grounding := prompt.Assemble(retrieved, question, p.persona)
	content, err := p.generator.Generate(ctx, grounding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return &models.Answer{
		Query:   question,
		Context: retrieved,
		Content: content,
	}, nil
}
