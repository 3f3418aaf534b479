package pipeline

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/dgallion1/mdreader/internal/doctree"
)

// Document is one loaded markdown file: the page to display and its outline.
// A Document is never modified after the loader returns it.
type Document struct {
	ID          string
	Title       string
	Path        string // Source path, empty for uploads
	HTML        string // Page with rewritten heading anchors
	Headings    []doctree.Heading
	Tree        *doctree.Tree
	ContentHash string
	LoadedAt    time.Time
}

// DocumentSnapshot is a JSON-safe view of a document without its HTML.
type DocumentSnapshot struct {
	ID          string              `json:"doc_id"`
	Title       string              `json:"title"`
	Path        string              `json:"path,omitempty"`
	ContentHash string              `json:"content_hash"`
	LoadedAt    time.Time           `json:"loaded_at"`
	Headings    []doctree.Heading   `json:"headings"`
	Outline     doctree.OutlineNode `json:"outline"`
}

// Snapshot returns a JSON-safe copy of the document state.
func (d *Document) Snapshot() DocumentSnapshot {
	headings := d.Headings
	if headings == nil {
		headings = []doctree.Heading{}
	}
	return DocumentSnapshot{
		ID:          d.ID,
		Title:       d.Title,
		Path:        d.Path,
		ContentHash: d.ContentHash,
		LoadedAt:    d.LoadedAt,
		Headings:    headings,
		Outline:     d.Tree.Outline(),
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
