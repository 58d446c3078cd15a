package index

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"

	"medichat-rag/internal/models"
)

const collectionName = "query_batch"

// Index is an ephemeral nearest-neighbor structure over one batch of
// chunks. It is built once, never mutated, and discarded with the
// submission that created it.
type Index struct {
	collection *chromem.Collection
	size       int
}

// Result is one retrieved chunk with its cosine similarity.
type Result struct {
	Content    string
	Source     string
	Similarity float32
}

// Build embeds every chunk with embed and indexes the vectors. An empty
// chunk sequence yields a queryable index that always returns nothing.
// An embedding failure fails the whole build; there is no partial index.
func Build(ctx context.Context, embed chromem.EmbeddingFunc, chunks []models.Chunk) (*Index, error) {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %v", err)
	}

	idx := &Index{collection: collection, size: len(chunks)}
	if len(chunks) == 0 {
		return idx, nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:       strconv.Itoa(i),
			Content:  chunk.Content,
			Metadata: map[string]string{"source": chunk.Source},
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("adding documents: %v", err)
	}
	return idx, nil
}

// Len reports the number of indexed chunks.
func (idx *Index) Len() int { return idx.size }

// Search returns the k chunks nearest to the query, most similar first.
// k larger than the index is clamped, never an error.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if k > idx.size {
		k = idx.size
	}
	if k <= 0 || idx.size == 0 {
		return nil, nil
	}

	found, err := idx.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying index: %v", err)
	}

	results := make([]Result, len(found))
	for i, r := range found {
		results[i] = Result{
			Content:    r.Content,
			Source:     r.Metadata["source"],
			Similarity: r.Similarity,
		}
	}
	return results, nil
}
