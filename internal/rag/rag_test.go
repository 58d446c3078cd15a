package rag

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"unicode"

	"medichat-rag/internal/extractor"
	"medichat-rag/internal/models"
)

type generatorFake struct {
	prompt string
	err    error
}

func (f *generatorFake) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return "generated answer", nil
}

var vocab = []string{"hello", "world", "ibuprofen", "dosage", "take", "every", "hours"}

func vocabEmbedding(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, len(vocab))
	toks := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range toks {
		for i, v := range vocab {
			if tok == v {
				vec[i]++
			}
		}
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	if norm == 0 {
		vec[len(vec)-1] = 1
		norm = 1
	}
	n := float32(math.Sqrt(norm))
	for i := range vec {
		vec[i] /= n
	}
	return vec, nil
}

func newTestPipeline(gen Generator) *Pipeline {
	return NewPipeline(extractor.DefaultRegistry(), vocabEmbedding, gen, Options{})
}

func TestAskModelUnavailable(t *testing.T) {
	p := newTestPipeline(nil)
	_, err := p.Ask(context.Background(), []models.Document{{Name: "a.txt", Data: []byte("hello")}}, "q")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestAskNoExtractableText(t *testing.T) {
	batch := []models.Document{
		{Name: "empty.txt", Data: []byte("   ")},
		{Name: "image.png", Data: []byte{0x89, 0x50}}, // unsupported format
	}
	p := newTestPipeline(&generatorFake{})
	_, err := p.Ask(context.Background(), batch, "q")
	if !errors.Is(err, ErrNoExtractableText) {
		t.Fatalf("expected ErrNoExtractableText, got %v", err)
	}
}

func TestAskOneGoodOneEmptyDocument(t *testing.T) {
	// One document yields text, the other is empty: the batch succeeds
	// and only the good document feeds the index.
	batch := []models.Document{
		{Name: "notes.txt", Data: []byte("Hello world")},
		{Name: "scan.txt", Data: []byte("")},
	}
	gen := &generatorFake{}
	p := newTestPipeline(gen)

	answer, err := p.Ask(context.Background(), batch, "hello world")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer.Content != "generated answer" {
		t.Fatalf("unexpected answer content %q", answer.Content)
	}
	if len(answer.Context) != 1 || answer.Context[0] != "Hello world" {
		t.Fatalf("expected exactly the one extracted chunk in context, got %v", answer.Context)
	}
	if !strings.Contains(gen.prompt, "Hello world") {
		t.Fatalf("grounding prompt is missing the retrieved chunk")
	}
	if !strings.Contains(gen.prompt, "hello world") {
		t.Fatalf("grounding prompt is missing the question")
	}
}

func TestAskGenerationFailure(t *testing.T) {
	batch := []models.Document{{Name: "notes.txt", Data: []byte("Hello world")}}
	p := newTestPipeline(&generatorFake{err: errors.New("quota exceeded")})

	_, err := p.Ask(context.Background(), batch, "hello")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected the cause in the message, got %v", err)
	}
}

func TestAskRetrievalFailure(t *testing.T) {
	question := "what is the dosage"
	embed := func(ctx context.Context, text string) ([]float32, error) {
		if text == question {
			return nil, errors.New("embedding endpoint down")
		}
		return vocabEmbedding(ctx, text)
	}
	p := NewPipeline(extractor.DefaultRegistry(), embed, &generatorFake{}, Options{})

	batch := []models.Document{{Name: "notes.txt", Data: []byte("Hello world")}}
	_, err := p.Ask(context.Background(), batch, question)
	if !errors.Is(err, ErrRetrieval) {
		t.Fatalf("expected ErrRetrieval, got %v", err)
	}
	if errors.Is(err, ErrIndexBuild) {
		t.Fatalf("search failure misreported as an index build failure: %v", err)
	}
	if !strings.Contains(err.Error(), "embedding endpoint down") {
		t.Fatalf("expected the cause in the message, got %v", err)
	}
}

func TestChunkBatchHonorsZeroOverlap(t *testing.T) {
	overlap := 0
	p := NewPipeline(extractor.DefaultRegistry(), vocabEmbedding, &generatorFake{},
		Options{ChunkSize: 100, ChunkOverlap: &overlap})

	var b strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, "word%04d ", i)
	}
	text := strings.TrimSpace(b.String())

	chunks := p.ChunkBatch([]models.Document{{Name: "a.txt", Text: text}})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	pos := 0
	for _, c := range chunks {
		at := strings.Index(text[pos:], c.Content)
		if at < 0 {
			t.Fatalf("chunk repeats text from an earlier chunk: %q", c.Content)
		}
		pos += at + len(c.Content)
	}
}

func TestChunkBatchSources(t *testing.T) {
	p := newTestPipeline(&generatorFake{})
	batch := []models.Document{
		{Name: "a.txt", Text: strings.Repeat("take every hours ", 100)},
		{Name: "b.txt", Text: "ibuprofen dosage"},
	}
	chunks := p.ChunkBatch(batch)
	if len(chunks) < 3 {
		t.Fatalf("expected chunks from both documents, got %d", len(chunks))
	}
	sources := make(map[string]bool)
	for _, c := range chunks {
		sources[c.Source] = true
		if len(c.Content) > 1000 {
			t.Fatalf("chunk exceeds configured size: %d", len(c.Content))
		}
	}
	if !sources["a.txt"] || !sources["b.txt"] {
		t.Fatalf("chunk sources incomplete: %v", sources)
	}
}

func TestBuildIndexRetrieval(t *testing.T) {
	batch := []models.Document{
		{Name: "leaflet.txt", Data: []byte("Ibuprofen: take 200mg every 6 hours")},
		{Name: "parking.txt", Data: []byte("The car park closes at midnight")},
	}
	p := newTestPipeline(&generatorFake{})

	idx, err := p.BuildIndex(context.Background(), batch)
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	results, err := idx.Search(context.Background(), "ibuprofen dosage", 1)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || !strings.Contains(results[0].Content, "Ibuprofen") {
		t.Fatalf("expected the ibuprofen chunk as top hit, got %v", results)
	}
}
