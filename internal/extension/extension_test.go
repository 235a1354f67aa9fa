package extension

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// mockRecorder collects attempts in memory.
type mockRecorder struct {
	mu       sync.Mutex
	attempts []Attempt
}

func (m *mockRecorder) Record(_ context.Context, a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *mockRecorder) outcomes() []Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Outcome
	for _, a := range m.attempts {
		out = append(out, a.Outcome)
	}
	return out
}

func newHost(t *testing.T, contentType string, body []byte, status int) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			http.Redirect(w, r, "/uc?"+r.URL.RawQuery, http.StatusFound)
			return
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testSource(ts *httptest.Server, path string) Source {
	return Source{
		FileID:      "abc123",
		URLTemplate: ts.URL + path + "?export=download&id=%s",
		Filename:    DefaultFilename,
	}
}

func TestSourceURL(t *testing.T) {
	got := DefaultSource().URL()
	want := "https://drive.google.com/uc?export=download&id=1AlOwMByT5Bb_Oz2TLD7KD5PParKUx581&confirm=t"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestLooksLikeArchive(t *testing.T) {
	tests := []struct {
		size        int64
		contentType string
		want        bool
	}{
		{2000, "application/zip", true},
		{2000, "application/octet-stream", true},
		{2000, "", true},
		{1000, "application/zip", false},
		{999, "application/zip", false},
		{5000, "text/html; charset=utf-8", false},
		{5000, "TEXT/HTML", false},
	}
	for _, tt := range tests {
		if got := LooksLikeArchive(tt.size, tt.contentType, DefaultMinBytes); got != tt.want {
			t.Errorf("LooksLikeArchive(%d, %q) = %v, want %v", tt.size, tt.contentType, got, tt.want)
		}
	}
}

func TestFetchStrategy(t *testing.T) {
	archive := bytes.Repeat([]byte("PK"), 1024)

	t.Run("archive follows redirects", func(t *testing.T) {
		ts := newHost(t, "application/zip", archive, http.StatusOK)
		f := &FetchStrategy{}
		d, err := f.Attempt(context.Background(), testSource(ts, "/redirect"))
		if err != nil {
			t.Fatalf("Attempt: %v", err)
		}
		if d.Kind != KindPayload || !bytes.Equal(d.Payload, archive) {
			t.Errorf("unexpected delivery: kind=%s len=%d", d.Kind, len(d.Payload))
		}
		if d.Filename != "signify-extension.zip" {
			t.Errorf("Filename = %q", d.Filename)
		}
	})

	t.Run("html page rejected", func(t *testing.T) {
		page := []byte("<html>" + strings.Repeat("x", 4000) + "</html>")
		ts := newHost(t, "text/html; charset=utf-8", page, http.StatusOK)
		_, err := (&FetchStrategy{}).Attempt(context.Background(), testSource(ts, "/uc"))
		if !errors.Is(err, ErrRejected) {
			t.Errorf("expected ErrRejected, got %v", err)
		}
	})

	t.Run("undersized rejected", func(t *testing.T) {
		ts := newHost(t, "application/zip", []byte("tiny"), http.StatusOK)
		_, err := (&FetchStrategy{}).Attempt(context.Background(), testSource(ts, "/uc"))
		if !errors.Is(err, ErrRejected) {
			t.Errorf("expected ErrRejected, got %v", err)
		}
	})

	t.Run("status error", func(t *testing.T) {
		ts := newHost(t, "", nil, http.StatusForbidden)
		_, err := (&FetchStrategy{}).Attempt(context.Background(), testSource(ts, "/uc"))
		if err == nil || errors.Is(err, ErrRejected) {
			t.Errorf("expected transport-style error, got %v", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		ts := newHost(t, "application/zip", archive, http.StatusOK)
		_, err := (&FetchStrategy{MaxBytes: 100}).Attempt(context.Background(), testSource(ts, "/uc"))
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("expected ErrTooLarge, got %v", err)
		}
	})
}

type countingReporter struct {
	started  bool
	total    int64
	finished bool
}

func (c *countingReporter) Start(int64) { c.started = true }
func (c *countingReporter) Add(n int)   { c.total += int64(n) }
func (c *countingReporter) Finish()     { c.finished = true }

func TestFetchStrategyReportsProgress(t *testing.T) {
	archive := bytes.Repeat([]byte{1}, 4096)
	ts := newHost(t, "application/zip", archive, http.StatusOK)

	rep := &countingReporter{}
	if _, err := (&FetchStrategy{Progress: rep}).Attempt(context.Background(), testSource(ts, "/uc")); err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if !rep.started || !rep.finished || rep.total != int64(len(archive)) {
		t.Errorf("reporter = %+v", rep)
	}
}

func TestRunDeliversPayloadOnce(t *testing.T) {
	archive := bytes.Repeat([]byte("Z"), 2048)
	ts := newHost(t, "application/zip", archive, http.StatusOK)
	rec := &mockRecorder{}
	o := NewOrchestrator(testSource(ts, "/uc"), rec, Strategies(&FetchStrategy{}, FallbackLink, 0)...)

	var st Status
	var dispatched []*Delivery
	ok := o.Run(context.Background(), "visitor-1", &st, func(d *Delivery) {
		if !st.Downloading() {
			t.Error("status should be Downloading during dispatch")
		}
		dispatched = append(dispatched, d)
	})

	if !ok {
		t.Fatal("Run returned false on an idle status")
	}
	if len(dispatched) != 1 || dispatched[0].Kind != KindPayload || dispatched[0].Strategy != "fetch" {
		t.Fatalf("dispatched = %+v", dispatched)
	}
	if st.Downloading() {
		t.Error("status should be Idle after Run")
	}
	if got := rec.outcomes(); len(got) != 1 || got[0] != OutcomeDelivered {
		t.Errorf("recorded outcomes = %v", got)
	}
}

func TestRunFallsBackToLink(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        []byte
		status      int
		want        Outcome
	}{
		{"html", "text/html", bytes.Repeat([]byte("a"), 3000), http.StatusOK, OutcomeRejected},
		{"undersized", "application/zip", []byte("PK"), http.StatusOK, OutcomeRejected},
		{"server error", "", nil, http.StatusInternalServerError, OutcomeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newHost(t, tt.contentType, tt.body, tt.status)
			rec := &mockRecorder{}
			src := testSource(ts, "/uc")
			o := NewOrchestrator(src, rec, Strategies(&FetchStrategy{}, FallbackLink, 0)...)

			var st Status
			var got *Delivery
			o.Run(context.Background(), "v", &st, func(d *Delivery) { got = d })

			if got == nil || got.Kind != KindLink || got.URL != src.URL() {
				t.Fatalf("expected link delivery, got %+v", got)
			}
			if st.Downloading() {
				t.Error("status should be Idle after fallback")
			}
			outcomes := rec.outcomes()
			if len(outcomes) != 2 || outcomes[0] != tt.want || outcomes[1] != OutcomeDelivered {
				t.Errorf("outcomes = %v", outcomes)
			}
		})
	}
}

func TestRunTransportFailure(t *testing.T) {
	src := Source{FileID: "x", URLTemplate: "http://127.0.0.1:1/uc?id=%s", Filename: DefaultFilename}
	o := NewOrchestrator(src, nil, Strategies(&FetchStrategy{Client: &http.Client{Timeout: time.Second}}, FallbackLink, 0)...)

	var st Status
	var got *Delivery
	o.Run(context.Background(), "v", &st, func(d *Delivery) { got = d })
	if got == nil || got.Kind != KindLink {
		t.Fatalf("expected link fallback, got %+v", got)
	}
	if st.Downloading() {
		t.Error("status should be Idle")
	}
}

func TestRunFrameFallbackLingers(t *testing.T) {
	ts := newHost(t, "", nil, http.StatusNotFound)
	o := NewOrchestrator(testSource(ts, "/uc"), nil, Strategies(&FetchStrategy{}, FallbackFrame, 2*time.Second)...)

	var (
		st      Status
		delay   time.Duration
		pending func()
	)
	st.afterFunc = func(d time.Duration, f func()) {
		delay = d
		pending = f
	}

	var got *Delivery
	o.Run(context.Background(), "v", &st, func(d *Delivery) { got = d })

	if got == nil || got.Kind != KindFrame {
		t.Fatalf("expected frame delivery, got %+v", got)
	}
	if !st.Downloading() {
		t.Error("status should stay Downloading while the frame lingers")
	}
	if delay != 2*time.Second || pending == nil {
		t.Fatalf("expected a 2s cleanup, got %v", delay)
	}

	pending()
	if st.Downloading() {
		t.Error("status should be Idle after cleanup")
	}
}

func TestRunIsNotReentrant(t *testing.T) {
	ts := newHost(t, "", nil, http.StatusNotFound)
	o := NewOrchestrator(testSource(ts, "/uc"), nil, Strategies(&FetchStrategy{}, FallbackFrame, time.Hour)...)

	var st Status
	var pending func()
	st.afterFunc = func(_ time.Duration, f func()) { pending = f }

	calls := 0
	dispatch := func(*Delivery) { calls++ }

	if !o.Run(context.Background(), "v", &st, dispatch) {
		t.Fatal("first Run should start")
	}
	if o.Run(context.Background(), "v", &st, dispatch) {
		t.Error("second Run while downloading should have no effect")
	}
	if calls != 1 {
		t.Errorf("dispatch called %d times, want 1", calls)
	}

	pending()
	if !o.Run(context.Background(), "v", &st, dispatch) {
		t.Error("Run should start again once Idle")
	}
}

func TestRunAllStrategiesFail(t *testing.T) {
	ts := newHost(t, "", nil, http.StatusNotFound)
	o := NewOrchestrator(testSource(ts, "/uc"), nil, &FetchStrategy{})

	var st Status
	called := false
	if !o.Run(context.Background(), "v", &st, func(*Delivery) { called = true }) {
		t.Fatal("Run should report that it ran")
	}
	if called {
		t.Error("dispatch should not be called when every strategy fails")
	}
	if st.Downloading() {
		t.Error("status should be Idle")
	}
}

func TestStatusSubscribe(t *testing.T) {
	var st Status
	ch, cancel := st.Subscribe()
	defer cancel()

	st.begin()
	if got := <-ch; got != Downloading {
		t.Errorf("got %v, want downloading", got)
	}

	st.finish()
	st.begin()
	st.finish()
	if got := <-ch; got != Idle {
		t.Errorf("slow reader should see latest state, got %v", got)
	}
	if Idle.String() != "idle" || Downloading.String() != "downloading" {
		t.Error("unexpected State strings")
	}
}
