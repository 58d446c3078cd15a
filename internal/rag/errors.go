package rag

import "errors"

// Stage-boundary failures, each surfaced as a short human-readable
// message rather than a crash.
var (
	// ErrNoExtractableText: no document in the batch yielded text,
	// usually scanned-image PDFs.
	ErrNoExtractableText = errors.New("no extractable text found")

	// ErrNoChunks: extraction produced text but chunking produced
	// nothing; the pipeline halts before indexing.
	ErrNoChunks = errors.New("could not create chunks from the documents")

	// ErrIndexBuild: the embedding model was unavailable; no partial
	// index is retained.
	ErrIndexBuild = errors.New("embedding index build failed")

	// ErrRetrieval: the similarity search over a built index failed,
	// including embedding the query itself.
	ErrRetrieval = errors.New("context retrieval failed")

	// ErrModelUnavailable: the chat model was never initialized,
	// typically a missing credential.
	ErrModelUnavailable = errors.New("chat model is not initialized")

	// ErrGeneration: the chat model call failed; no retry, no partial
	// answer.
	ErrGeneration = errors.New("answer generation failed")
)
