package helper

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestHumanSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, c := range cases {
		if got := HumanSize(c.in); got != c.want {
			t.Fatalf("HumanSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGenerateUUIDUnique(t *testing.T) {
	a, err := GenerateUUID()
	if err != nil {
		t.Fatalf("GenerateUUID() error = %v", err)
	}
	b, err := GenerateUUID()
	if err != nil {
		t.Fatalf("GenerateUUID() error = %v", err)
	}
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a, b)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("**bold** answer")
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected rendered markdown, got %q", html)
	}
}

func TestPrettyPrint(t *testing.T) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	PrettyPrint(map[string]int{"pages": 3})

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	if !strings.Contains(string(out), `"pages": 3`) {
		t.Fatalf("expected indented JSON, got %q", out)
	}
}

func TestPreviewHTML(t *testing.T) {
	out := PreviewHTML([]byte("%PDF-1.4"), 600)
	if !strings.Contains(out, "application/pdf") || !strings.Contains(out, `height="600"`) {
		t.Fatalf("unexpected preview snippet: %q", out)
	}
}
