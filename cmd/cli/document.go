package main

import (
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/and161185/flashdeck/internal/generation"
)

// extTypes covers formats missing from common mime tables.
var extTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// detectMIME infers the media type from the file extension, without parameters.
func detectMIME(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := extTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return "application/octet-stream"
}

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

// readDocument loads a source file for generation; "-" reads stdin as plain text.
func readDocument(p string) (*generation.Document, error) {
	data, err := readAll(p)
	if err != nil {
		return nil, err
	}
	if p == "-" {
		return &generation.Document{Name: "stdin.txt", MIMEType: "text/plain", Data: data}, nil
	}
	return &generation.Document{Name: filepath.Base(p), MIMEType: detectMIME(p), Data: data}, nil
}
