package hub

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDirsEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv("HPDFHUB_MEDICAL_DIR", override)

	dirs := ResolveDirs(map[string]string{"medical": "/does/not/exist"})
	if dirs["medical"] != override {
		t.Fatalf("expected env override, got %q", dirs["medical"])
	}
}

func TestResolveDirsKeepsConfigured(t *testing.T) {
	configured := t.TempDir()
	dirs := ResolveDirs(map[string]string{"hospital": configured})
	if dirs["hospital"] != configured {
		t.Fatalf("expected configured dir, got %q", dirs["hospital"])
	}
}

func TestListFolder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("pdf-b"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("pdf-a"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	items := ListFolder(dir)
	if len(items) != 2 {
		t.Fatalf("expected 2 PDFs, got %d", len(items))
	}
	if items[0].Name != "a.pdf" || items[1].Name != "b.pdf" {
		t.Fatalf("expected name-sorted listing, got %v", items)
	}
	if items[0].Size != 5 {
		t.Fatalf("unexpected size: %d", items[0].Size)
	}
	if items[0].UploadedAt.IsZero() {
		t.Fatalf("expected the file's modification time")
	}
}

func TestListFolderMissingDir(t *testing.T) {
	if items := ListFolder("/no/such/dir"); len(items) != 0 {
		t.Fatalf("expected empty listing, got %d", len(items))
	}
}
