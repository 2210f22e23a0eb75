package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pipe01/htmlfold/internal/document"
)

// Workspace keeps the documents known to a process, keyed by URI for
// documents opened by an editor or by path for files loaded from disk.
type Workspace struct {
	rootPath string

	mu        sync.RWMutex
	documents map[string]*document.Document
}

func New(rootPath string) *Workspace {
	return &Workspace{
		rootPath:  rootPath,
		documents: make(map[string]*document.Document),
	}
}

func (w *Workspace) Open(uri string, version int32, text string) *document.Document {
	doc := document.New(uri, version, text)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.documents[uri] = doc
	return doc
}

// Update applies changes to an open document. Updating a document that is not
// open does nothing and returns nil.
func (w *Workspace) Update(uri string, version int32, changes ...document.Change) (*document.Document, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, ok := w.documents[uri]
	if !ok {
		return nil, nil
	}

	next, err := doc.Apply(version, changes...)
	if err != nil {
		return nil, fmt.Errorf("apply changes to %q: %w", uri, err)
	}

	w.documents[uri] = next
	return next, nil
}

func (w *Workspace) Close(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.documents, uri)
}

func (w *Workspace) Get(uri string) (*document.Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.documents[uri]
	return doc, ok
}

// Load reads a file relative to the workspace root. Files are only read once
// until they are invalidated.
func (w *Workspace) Load(relPath string) (*document.Document, error) {
	fullPath := w.fullPath(relPath)

	if doc, ok := w.Get(fullPath); ok {
		return doc, nil
	}

	bytes, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var version int32
	if prev, ok := w.documents[fullPath]; ok {
		version = prev.Version() + 1
	}

	doc := document.New(fullPath, version, string(bytes))
	w.documents[fullPath] = doc

	return doc, nil
}

// Invalidate forgets a loaded file so the next Load reads it again.
func (w *Workspace) Invalidate(relPath string) {
	w.Close(w.fullPath(relPath))
}

func (w *Workspace) fullPath(relPath string) string {
	if filepath.IsAbs(relPath) {
		return filepath.Clean(relPath)
	}
	return filepath.Join(w.rootPath, relPath)
}
