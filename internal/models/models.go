package models

// Document is one ingested file: the raw bytes plus whatever text
// extraction produced. Text stays empty when the file has no text layer
// or extraction failed.
type Document struct {
	Name string
	Data []byte
	Text string
}

// Chunk is a bounded-length segment of a document's extracted text.
type Chunk struct {
	Content string
	Source  string
}

// Answer holds the model's response together with the retrieved
// passages it was grounded on.
type Answer struct {
	Query   string
	Context []string
	Content string
}
