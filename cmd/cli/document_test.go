package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func Test_detectMIME(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"notes.pdf":   "application/pdf",
		"NOTES.MD":    "text/markdown",
		"a/b/c.txt":   "text/plain",
		"slides.pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"essay.docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"noext":       "application/octet-stream",
	}
	for name, want := range tests {
		if got := detectMIME(name); got != want {
			t.Fatalf("detectMIME(%q)=%q want %q", name, got, want)
		}
	}
}

func Test_readDocument(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "cells.md")
	if err := os.WriteFile(p, []byte("# Cells"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	d, err := readDocument(p)
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if d.Name != "cells.md" || d.MIMEType != "text/markdown" || string(d.Data) != "# Cells" {
		t.Fatalf("unexpected document: %+v", d)
	}
	if _, err := readDocument(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatalf("missing file must fail")
	}
}

func Test_readAll_Stdin(t *testing.T) {
	r, w, _ := os.Pipe()
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() { _, _ = io.WriteString(w, "from-stdin"); _ = w.Close() }()

	d, err := readDocument("-")
	if err != nil || string(d.Data) != "from-stdin" || d.MIMEType != "text/plain" {
		t.Fatalf("readDocument(stdin): %+v %v", d, err)
	}
}
