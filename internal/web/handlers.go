package web

import (
	"errors"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/knightsbridge/faqsite/internal/extension"
	"github.com/knightsbridge/faqsite/internal/faq"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	expanded, _ := sess.Accordion.Expanded()

	render(w, http.StatusOK, s.page(pageState{
		Dark:                sess.Dark(),
		Expanded:            expanded,
		InstructionsVisible: sess.Instructions.Visible(),
		Downloading:         sess.Download.Downloading(),
	}))
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r.Context()).ToggleTheme()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleToggleFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := sessionFrom(r.Context()).Accordion.Toggle(id); err != nil {
		if errors.Is(err, faq.ErrUnknownEntry) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/#faq-"+id, http.StatusSeeOther)
}

func (s *Server) handleToggleInstructions(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r.Context()).Instructions.Toggle()
	http.Redirect(w, r, "/#extension", http.StatusSeeOther)
}

// handleDownload runs the download strategies for the visitor. A request
// made while the visitor already has a download in progress gets 204 and
// has no other effect.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	dispatched := false
	started := s.orchestrator.Run(r.Context(), sess.ID, sess.Download, func(d *extension.Delivery) {
		dispatched = true
		s.deliver(w, r, d)
	})
	if !started {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !dispatched {
		http.Redirect(w, r, "/#extension", http.StatusSeeOther)
	}
}

func (s *Server) deliver(w http.ResponseWriter, r *http.Request, d *extension.Delivery) {
	switch d.Kind {
	case extension.KindPayload:
		contentType := d.ContentType
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = "application/zip"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename}))
		w.Header().Set("Content-Length", strconv.Itoa(len(d.Payload)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(d.Payload); err != nil {
			log.Printf("web: writing payload: %v", err)
		}
	case extension.KindFrame:
		render(w, http.StatusOK, framePage(d.URL, d.Linger.Milliseconds()))
	default:
		http.Redirect(w, r, d.URL, http.StatusSeeOther)
	}
}

func render(w http.ResponseWriter, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := n.Render(w); err != nil {
		log.Printf("web: rendering page: %v", err)
	}
}
