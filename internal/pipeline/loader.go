package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/mdreader/internal/doctree"
	"github.com/dgallion1/mdreader/internal/metrics"
	"github.com/dgallion1/mdreader/internal/parser"
)

// Loader turns markdown into Documents: render, wrap into a page, rewrite
// heading anchors and build the outline.
type Loader struct {
	renderer   *parser.Renderer
	stylesheet string
	metrics    *metrics.Recorder
	log        *slog.Logger
}

func NewLoader(renderer *parser.Renderer, stylesheet string, rec *metrics.Recorder, log *slog.Logger) *Loader {
	return &Loader{
		renderer:   renderer,
		stylesheet: stylesheet,
		metrics:    rec,
		log:        log,
	}
}

// LoadFile reads and loads a markdown file. Relative links in the page
// resolve against the file's own path.
func (l *Loader) LoadFile(path string) (*Document, error) {
	path = parser.NormalizePath(path)
	return l.LoadFileAt(path, fileURL(path))
}

// LoadFileAt is LoadFile with an explicit <base href> for the page.
func (l *Loader) LoadFileAt(path, baseHref string) (*Document, error) {
	if err := parser.CheckExtension(path); err != nil {
		l.metrics.ObserveLoad(metrics.OutcomeBadInput, 0, 0)
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		l.metrics.ObserveLoad(metrics.OutcomeReadError, 0, 0)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := l.LoadSource(path, baseHref, src)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// LoadSource loads markdown that did not come from the file system directly.
// name supplies the title; baseHref becomes the page's <base href>.
func (l *Loader) LoadSource(name, baseHref string, src []byte) (*Document, error) {
	start := time.Now()
	log := l.log.With("name", name)

	body, err := l.renderer.Render(src)
	if err != nil {
		l.metrics.ObserveLoad(metrics.OutcomeRenderError, 0, 0)
		log.Error("render failed", "error", err)
		return nil, err
	}

	page, headings := parser.ExtractHeadings(parser.BuildPage(body, baseHref, l.stylesheet))

	tree, err := doctree.BuildOutline(headings)
	if err != nil {
		// Extracted levels are always 1..6, so this is a bug in the extractor.
		l.metrics.ObserveLoad(metrics.OutcomeRenderError, 0, 0)
		log.Error("outline build failed", "error", err)
		return nil, fmt.Errorf("build outline: %w", err)
	}

	doc := &Document{
		ID:          uuid.NewString(),
		Title:       parser.TitleFromPath(name),
		HTML:        page,
		Headings:    headings,
		Tree:        tree,
		ContentHash: ContentHashHex(src),
		LoadedAt:    time.Now(),
	}

	elapsed := time.Since(start)
	l.metrics.ObserveLoad(metrics.OutcomeOK, elapsed, len(headings))
	log.Debug("document loaded", "doc_id", doc.ID, "headings", len(headings), "duration_ms", elapsed.Milliseconds())
	return doc, nil
}

// fileURL returns a file:// URL for path, absolute when possible.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "file://" + path
}

// IsUserError reports whether err was caused by the caller's input rather
// than by the loader itself.
func IsUserError(err error) bool {
	return errors.Is(err, parser.ErrUnsupportedExtension) || errors.Is(err, os.ErrNotExist)
}
