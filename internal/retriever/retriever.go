package retriever

import (
	"context"

	"medichat-rag/internal/index"
)

// DefaultTopK matches the retrieval depth the grounding prompt is
// tuned for.
const DefaultTopK = 4

// Retrieve returns the texts of the k chunks most similar to the query,
// ranked best first. The query is embedded with the same function the
// index was built with, since the index owns it. Scores stay behind
// this boundary.
func Retrieve(ctx context.Context, idx *index.Index, query string, k int) ([]string, error) {
	if k <= 0 {
		k = DefaultTopK
	}
	results, err := idx.Search(ctx, query, k)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Content
	}
	return texts, nil
}
