package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/knightsbridge/faqsite/internal/faq"
	"github.com/knightsbridge/faqsite/internal/install"
)

// extensionResponse is the JSON response for the extension endpoint.
type extensionResponse struct {
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	VendorURL string `json:"vendor_url"`
}

func (s *Server) registerAPI(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/faq", s.handleListFAQ)
		r.Get("/faq/{id}", s.handleGetFAQ)
		r.Get("/instructions", s.handleInstructions)
		r.Get("/extension", s.handleExtension)
	})
}

func (s *Server) handleListFAQ(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, faq.Entries())
}

func (s *Server) handleGetFAQ(w http.ResponseWriter, r *http.Request) {
	entry, ok := faq.Lookup(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleInstructions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, install.Instructions())
}

func (s *Server) handleExtension(w http.ResponseWriter, r *http.Request) {
	src := s.orchestrator.Source()
	writeJSON(w, http.StatusOK, extensionResponse{
		URL:       src.URL(),
		Filename:  src.Filename,
		VendorURL: install.VendorURL,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
