package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/mdreader/internal/metrics"
)

// ErrDocumentNotFound is returned for unknown or expired document IDs.
var ErrDocumentNotFound = errors.New("document not found")

// Store is a thread-safe in-memory document registry with TTL eviction.
type Store struct {
	mu      sync.Mutex
	docs    map[string]*storedDoc
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.Recorder
}

type storedDoc struct {
	doc        *Document
	lastAccess time.Time
}

func NewStore(ttl time.Duration, rec *metrics.Recorder) *Store {
	return &Store{
		docs:    make(map[string]*storedDoc),
		ttl:     ttl,
		now:     time.Now,
		metrics: rec,
	}
}

func (s *Store) Put(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = &storedDoc{doc: doc, lastAccess: s.now()}
	s.metrics.SetStoredDocuments(len(s.docs))
}

// Get returns the document and refreshes its TTL.
func (s *Store) Get(id string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	sd.lastAccess = s.now()
	return sd.doc, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Cleanup removes expired documents and returns how many were dropped.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, sd := range s.docs {
		if now.Sub(sd.lastAccess) > s.ttl {
			delete(s.docs, id)
			removed++
		}
	}
	s.metrics.SetStoredDocuments(len(s.docs))
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (s *Store) RunCleanup(ctx context.Context, interval time.Duration, log *slog.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Cleanup(); n > 0 {
				log.Info("evicted expired documents", "count", n)
			}
		}
	}
}
