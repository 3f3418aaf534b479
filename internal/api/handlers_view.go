package api

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/html"

	"github.com/dgallion1/mdreader/internal/doctree"
	"github.com/dgallion1/mdreader/internal/parser"
)

// viewerStyle pins the outline to the right edge of the page.
const viewerStyle = "<style>body{margin-right:20em}" +
	"nav.outline{position:fixed;top:0;right:0;width:19em;height:100%;overflow:auto;" +
	"border-left:1px solid #ccc;padding:.5em;font-size:.9em}" +
	"nav.outline ul{padding-left:1em;list-style:none}</style>\n"

// handleView serves DocRoot. Markdown files are rendered with their outline,
// directories list their markdown files, everything else is served as is so
// relative images and stylesheets in documents keep working.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			jsonError(w, "invalid path", http.StatusBadRequest)
			return
		}
	}
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	full := filepath.Join(s.cfg.DocRoot, filepath.FromSlash(rel))

	st, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		jsonError(w, "failed to stat path", http.StatusInternalServerError)
		return
	}

	switch {
	case st.IsDir():
		s.serveIndex(w, rel, full)
	case parser.IsSupportedExtension(full):
		s.serveDocument(w, rel, full)
	default:
		http.ServeFile(w, r, full)
	}
}

func (s *Server) serveDocument(w http.ResponseWriter, rel, full string) {
	dir := path.Dir("/" + rel)
	base := "/view" + strings.TrimSuffix(dir, "/") + "/"

	doc, err := s.loader.LoadFileAt(full, base)
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.store.Put(doc)

	var sb strings.Builder
	sb.WriteString(doc.HTML)
	sb.WriteString("\n")
	sb.WriteString(viewerStyle)
	if err := doctree.RenderNav(doc.Tree, &sb); err != nil {
		s.log.Error("outline render failed", "doc_id", doc.ID, "error", err)
		jsonError(w, "failed to render outline", http.StatusInternalServerError)
		return
	}
	sb.WriteString("\n<title>")
	sb.WriteString(html.EscapeString(doc.Title))
	sb.WriteString("</title>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Document-ID", doc.ID)
	w.Write([]byte(sb.String()))
}

func (s *Server) serveIndex(w http.ResponseWriter, rel, full string) {
	entries, err := os.ReadDir(full)
	if err != nil {
		jsonError(w, "failed to read directory", http.StatusInternalServerError)
		return
	}

	var names []string
	for _, e := range entries {
		switch {
		case e.IsDir() && !strings.HasPrefix(e.Name(), "."):
			names = append(names, e.Name()+"/")
		case parser.IsSupportedExtension(e.Name()):
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	prefix := "/view/"
	if rel != "" {
		prefix += rel + "/"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<ul>\n")
	for _, n := range names {
		fmt.Fprintf(&sb, "<li><a href=\"%s\">%s</a></li>\n", html.EscapeString(prefix+n), html.EscapeString(n))
	}
	sb.WriteString("</ul>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(sb.String()))
}
