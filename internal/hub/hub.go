package hub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sync"
	"time"

	"medichat-rag/internal/extractor"
	"medichat-rag/internal/helper"
	"medichat-rag/internal/models"
)

// Entry is one file held in a collection bucket.
type Entry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Pages      int       `json:"pages"`
	UploadedAt time.Time `json:"uploaded_at"`
	Data       []byte    `json:"-"`
	Path       string    `json:"path,omitempty"`
}

// Library is the per-session upload state: buckets of files keyed by
// collection name, plus the most recent batch per collection so a query
// can prefer the files just uploaded. All mutation goes through these
// methods; the mutex makes concurrent sessions safe to reason about.
type Library struct {
	mu        sync.RWMutex
	buckets   map[string][]Entry
	lastBatch map[string][]models.Document
}

func NewLibrary(collections ...string) *Library {
	l := &Library{
		buckets:   make(map[string][]Entry),
		lastBatch: make(map[string][]models.Document),
	}
	for _, c := range collections {
		l.buckets[c] = nil
	}
	return l
}

// AddToCollection appends the batch to the named bucket and remembers
// it as the collection's latest batch.
func (l *Library) AddToCollection(collection string, batch []models.Document) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.buckets[collection]; !ok && len(l.buckets) > 0 {
		return nil, fmt.Errorf("unknown collection: %s", collection)
	}

	entries := make([]Entry, 0, len(batch))
	for _, doc := range batch {
		id, err := helper.GenerateUUID()
		if err != nil {
			return nil, err
		}
		entry := Entry{
			ID:         id,
			Name:       doc.Name,
			Size:       int64(len(doc.Data)),
			Pages:      extractor.PageCount(doc.Data),
			UploadedAt: time.Now(),
			Data:       doc.Data,
		}
		entries = append(entries, entry)
		l.buckets[collection] = append(l.buckets[collection], entry)
	}
	snapshot := make([]models.Document, len(batch))
	copy(snapshot, batch)
	l.lastBatch[collection] = snapshot
	return entries, nil
}

// ListCollection returns a copy of the bucket in upload order.
func (l *Library) ListCollection(collection string) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bucket := l.buckets[collection]
	out := make([]Entry, len(bucket))
	copy(out, bucket)
	return out
}

// QueryBatch is what a submission runs against: the most recent upload
// batch when there is one, otherwise everything already in the bucket.
func (l *Library) QueryBatch(collection string) []models.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if batch := l.lastBatch[collection]; len(batch) > 0 {
		out := make([]models.Document, len(batch))
		copy(out, batch)
		return out
	}
	bucket := l.buckets[collection]
	docs := make([]models.Document, 0, len(bucket))
	for _, entry := range bucket {
		docs = append(docs, models.Document{Name: entry.Name, Data: entry.Data})
	}
	return docs
}

// Zip bundles the bucket's files into a single archive for download.
func (l *Library) Zip(collection string) ([]byte, error) {
	entries := l.ListCollection(collection)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		if len(entry.Data) == 0 {
			continue
		}
		w, err := zw.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %v", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %v", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
