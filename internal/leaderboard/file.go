package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// DefaultFile is the leaderboard file used when none is configured.
const DefaultFile = "placemate.json"

// FileBackend keeps the leaderboard in a pretty-printed JSON array.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend for path, or DefaultFile when path is empty.
func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = DefaultFile
	}
	return &FileBackend{path: path}
}

func (f *FileBackend) Name() string { return "json" }

// Path is the file the backend reads and writes.
func (f *FileBackend) Path() string { return f.path }

// Load reads the file. A missing file is an empty leaderboard. Elements that
// lack a string name or numeric time are kept unparsed so Save writes them
// back.
func (f *FileBackend) Load(_ context.Context) (Leaderboard, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Leaderboard{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", f.path, ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%s: expected array: %w", f.path, ErrMalformed)
	}
	lb := Leaderboard{}
	root.ForEach(func(_, v gjson.Result) bool {
		lb = append(lb, parseEntry(v))
		return true
	})
	return lb, nil
}

// Save rewrites the whole file, creating its directory if needed. Elements
// read from the file are written back as they were.
func (f *FileBackend) Save(_ context.Context, lb Leaderboard) error {
	docs := make([]json.RawMessage, 0, len(lb))
	for _, e := range lb {
		doc, err := e.encode()
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, append(data, '\n'), 0o644)
}
