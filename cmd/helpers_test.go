package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/knightsbridge/faqsite/internal/config"
	"github.com/knightsbridge/faqsite/internal/extension"
)

func TestBuildOrchestrator(t *testing.T) {
	payload := bytes.Repeat([]byte{'z'}, 4096)
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(payload)
	}))
	defer host.Close()

	cfg := config.DefaultConfig()
	cfg.Extension.URLTemplate = host.URL + "/uc?id=%s"

	orch := buildOrchestrator(cfg, nil, nil)
	if got := orch.Source().Filename; got != extension.DefaultFilename {
		t.Errorf("filename = %q", got)
	}

	var (
		st  extension.Status
		got *extension.Delivery
	)
	orch.Run(context.Background(), "cli", &st, func(d *extension.Delivery) { got = d })
	if got == nil || got.Kind != extension.KindPayload || !bytes.Equal(got.Payload, payload) {
		t.Fatalf("unexpected delivery %+v", got)
	}
}

func TestBuildOrchestratorFallback(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer host.Close()

	cfg := config.DefaultConfig()
	cfg.Extension.URLTemplate = host.URL + "/uc?id=%s"
	cfg.Extension.Fallback = "link"

	var (
		st  extension.Status
		got *extension.Delivery
	)
	buildOrchestrator(cfg, nil, nil).Run(context.Background(), "cli", &st, func(d *extension.Delivery) { got = d })
	if got == nil || got.Kind != extension.KindLink {
		t.Fatalf("expected link delivery, got %+v", got)
	}
	if st.Downloading() {
		t.Error("status should be idle after a link delivery")
	}
}

func TestWritePayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "signify-extension.zip")
	if err := writePayload(path, []byte("PK")); err != nil {
		t.Fatalf("writePayload: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "PK" {
		t.Errorf("content = %q", data)
	}
}
