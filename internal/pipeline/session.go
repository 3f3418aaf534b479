package pipeline

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrNoDocument is returned by Reload before any document was opened.
var ErrNoDocument = errors.New("no document open")

// Session holds the document a single reader is looking at. Loads are
// serialised, and a failed load leaves the previous document in place.
type Session struct {
	loader *Loader
	log    *slog.Logger

	loadMu sync.Mutex // serialises Open/Reload

	mu      sync.RWMutex
	current *Document
}

func NewSession(loader *Loader, log *slog.Logger) *Session {
	return &Session{loader: loader, log: log}
}

// Open loads path and makes it the current document.
func (s *Session) Open(path string) (*Document, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	doc, err := s.loader.LoadFile(path)
	if err != nil {
		s.log.Warn("open failed, keeping current document", "path", path, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()

	s.log.Info("document opened", "path", doc.Path, "doc_id", doc.ID, "headings", len(doc.Headings))
	return doc, nil
}

// Reload loads the current document's file again.
func (s *Session) Reload() (*Document, error) {
	cur := s.Current()
	if cur == nil || cur.Path == "" {
		return nil, ErrNoDocument
	}
	return s.Open(cur.Path)
}

// Current returns the current document, or nil.
func (s *Session) Current() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
