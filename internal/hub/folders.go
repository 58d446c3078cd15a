package hub

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"medichat-rag/internal/extractor"
)

// Env vars overriding the configured resource folder per collection.
var dirEnvVars = map[string]string{
	"medical":  "HPDFHUB_MEDICAL_DIR",
	"medicine": "HPDFHUB_MEDICINE_DIR",
	"hospital": "HPDFHUB_HOSPITAL_DIR",
}

// Relative fallbacks used when the configured folder does not exist.
var dirFallbacks = map[string]string{
	"medical":  "./medical_report",
	"medicine": "./medicine",
	"hospital": "./hospital",
}

// ResolveDirs picks each collection's resource folder: environment
// variable first, then the configured path, then the relative fallback
// when the configured one is missing.
func ResolveDirs(configured map[string]string) map[string]string {
	dirs := make(map[string]string, len(configured))
	for name, dir := range configured {
		if env := os.Getenv(dirEnvVars[name]); env != "" {
			dir = env
		}
		if _, err := os.Stat(dir); err != nil {
			if fallback, ok := dirFallbacks[name]; ok {
				if _, err := os.Stat(fallback); err == nil {
					dir = fallback
				}
			}
		}
		dirs[name] = dir
	}
	return dirs
}

// ListFolder returns an Entry for every *.pdf in the folder, sorted by
// name. These are browse/download items only; they are not fed into the
// retrieval pipeline. Unreadable files are skipped.
func ListFolder(dir string) []Entry {
	var items []Entry
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return items
	}

	for _, de := range dirEntries {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping unreadable PDF")
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		items = append(items, Entry{
			Name:       de.Name(),
			Size:       int64(len(data)),
			Pages:      extractor.PageCount(data),
			UploadedAt: info.ModTime(),
			Data:       data,
			Path:       path,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
