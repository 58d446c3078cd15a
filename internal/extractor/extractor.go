package extractor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Backend pulls plain text out of one file format. Implementations are
// pure: same bytes in, same text out. A document with no text layer
// yields an empty string, not an error; an error means the bytes could
// not be opened as that format at all.
type Backend interface {
	Extensions() []string
	Extract(data []byte) (string, error)
}

// Registry routes files to the backend registered for their extension.
// Which backends exist is decided at construction time, never by a
// runtime catch.
type Registry struct {
	backends map[string]Backend
}

func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[string]Backend)}
	for _, b := range backends {
		for _, ext := range b.Extensions() {
			r.backends[strings.ToLower(ext)] = b
		}
	}
	return r
}

// DefaultRegistry covers the formats the hub accepts.
func DefaultRegistry() *Registry {
	return NewRegistry(PDF{}, DOCX{}, XLSX{}, Plaintext{})
}

// ForFile returns the backend handling the file's extension.
func (r *Registry) ForFile(name string) (Backend, error) {
	ext := strings.ToLower(filepath.Ext(name))
	b, ok := r.backends[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}
	return b, nil
}

// Extract runs the matching backend over the file's bytes.
func (r *Registry) Extract(name string, data []byte) (string, error) {
	b, err := r.ForFile(name)
	if err != nil {
		return "", err
	}
	return b.Extract(data)
}
