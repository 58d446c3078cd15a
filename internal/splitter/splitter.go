package splitter

import "strings"

const (
	DefaultChunkSize    = 1000 // characters
	DefaultChunkOverlap = 200  // characters
)

// Split cuts text into chunks of at most size characters, consecutive
// chunks sharing up to overlap characters so context survives chunk
// boundaries. Cuts land on paragraph, sentence, or word breaks when one
// exists near the end of the window, and fall back to a hard cut
// otherwise. Empty input yields nil; input shorter than size yields a
// single trimmed chunk.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 2
	}

	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{string(runes)}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = cutPoint(runes, start, end)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// cutPoint pulls the cut back to the nearest break within the last
// tenth of the window: paragraph first, then sentence, then word.
func cutPoint(runes []rune, start, end int) int {
	limit := end - (end-start)/10
	if limit <= start {
		limit = start + 1
	}
	for i := end - 1; i >= limit; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	for i := end - 1; i >= limit; i-- {
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			return i + 1
		}
	}
	for i := end - 1; i >= limit; i-- {
		if runes[i] == ' ' || runes[i] == '\t' {
			return i + 1
		}
	}
	return end
}
