package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdreader/internal/parser"
	"github.com/dgallion1/mdreader/internal/pipeline"
)

// handleRender renders an uploaded markdown document. The document arrives
// either as multipart field "file" or as the raw request body, in which case
// the ?name= query parameter supplies the file name.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	var (
		filename string
		src      io.Reader
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		filename = header.Filename
		src = file
	} else {
		filename = r.URL.Query().Get("name")
		if filename == "" {
			filename = "untitled.md"
		}
		src = r.Body
	}

	filename = sanitizeFilename(filename)
	if err := parser.CheckExtension(filename); err != nil {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(src, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusBadRequest)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	base := r.URL.Query().Get("base")
	if base == "" {
		base = "/view/"
	}

	doc, err := s.loader.LoadSource(filename, base, data)
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.store.Put(doc)

	snap := doc.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   snap.ID,
		"title":    snap.Title,
		"headings": snap.Headings,
		"outline":  snap.Outline,
		"html_url": fmt.Sprintf("/api/documents/%s/html", snap.ID),
	})
}

// writeLoadError maps loader errors onto HTTP status codes.
func (s *Server) writeLoadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, parser.ErrUnsupportedExtension):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case pipeline.IsUserError(err):
		jsonError(w, "document not found", http.StatusNotFound)
	case errors.Is(err, parser.ErrRender):
		jsonError(w, err.Error(), http.StatusInternalServerError)
	default:
		s.log.Error("load failed", "error", err)
		jsonError(w, "failed to load document", http.StatusInternalServerError)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
