package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/mdreader/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// lookupDocument resolves {docID} or writes a 404.
func (s *Server) lookupDocument(w http.ResponseWriter, r *http.Request) (*pipeline.Document, bool) {
	doc, err := s.store.Get(chi.URLParam(r, "docID"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return doc, true
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupDocument(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc.Snapshot())
}

func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupDocument(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc.Tree.Outline())
}

func (s *Server) handleGetHTML(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupDocument(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(doc.HTML))
}
