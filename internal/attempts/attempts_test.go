package attempts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/knightsbridge/faqsite/internal/db"
	"github.com/knightsbridge/faqsite/internal/extension"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestLogAndGetByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	entry := Entry{
		ID:       "attempt-1",
		Owner:    "visitor-1",
		Strategy: "fetch",
		Outcome:  extension.OutcomeDelivered,
		Detail:   "payload",
		Bytes:    4096,
	}
	if err := store.Log(ctx, entry); err != nil {
		t.Fatalf("Log: %v", err)
	}

	got, err := store.GetByID(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Owner != "visitor-1" {
		t.Errorf("Owner = %q, want %q", got.Owner, "visitor-1")
	}
	if got.Strategy != "fetch" {
		t.Errorf("Strategy = %q, want %q", got.Strategy, "fetch")
	}
	if got.Outcome != extension.OutcomeDelivered {
		t.Errorf("Outcome = %q", got.Outcome)
	}
	if got.Bytes != 4096 {
		t.Errorf("Bytes = %d, want 4096", got.Bytes)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp to be parsed")
	}
}

func TestRecordGeneratesUUID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	err := store.Record(ctx, extension.Attempt{
		Owner:    "v",
		Strategy: "fetch",
		Outcome:  extension.OutcomeRejected,
		Detail:   "html",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Query(ctx, QueryFilter{Owner: "v"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID == "" {
		t.Error("expected generated ID, got empty string")
	}
}

func TestQueryFilters(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	seed := []extension.Attempt{
		{Owner: "a", Strategy: "fetch", Outcome: extension.OutcomeFailed},
		{Owner: "a", Strategy: "link", Outcome: extension.OutcomeDelivered},
		{Owner: "b", Strategy: "fetch", Outcome: extension.OutcomeDelivered},
		{Owner: "b", Strategy: "fetch", Outcome: extension.OutcomeRejected},
	}
	for _, a := range seed {
		if err := store.Record(ctx, a); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter QueryFilter
		want   int
	}{
		{"all", QueryFilter{}, 4},
		{"by owner", QueryFilter{Owner: "a"}, 2},
		{"by strategy", QueryFilter{Strategy: "fetch"}, 3},
		{"by outcome", QueryFilter{Outcome: extension.OutcomeDelivered}, 2},
		{"limit", QueryFilter{Limit: 3}, 3},
		{"offset only", QueryFilter{Offset: 3}, 1},
		{"limit offset", QueryFilter{Limit: 2, Offset: 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.Query(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if len(entries) != tt.want {
				t.Errorf("got %d entries, want %d", len(entries), tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, a := range []extension.Attempt{
		{Strategy: "fetch", Outcome: extension.OutcomeRejected},
		{Strategy: "fetch", Outcome: extension.OutcomeRejected},
		{Strategy: "frame", Outcome: extension.OutcomeDelivered},
	} {
		if err := store.Record(ctx, a); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	sum, err := store.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Total != 3 {
		t.Errorf("Total = %d, want 3", sum.Total)
	}
	if sum.Counts["fetch"][extension.OutcomeRejected] != 2 {
		t.Errorf("fetch rejected = %d, want 2", sum.Counts["fetch"][extension.OutcomeRejected])
	}
	if sum.Counts["frame"][extension.OutcomeDelivered] != 1 {
		t.Errorf("frame delivered = %d, want 1", sum.Counts["frame"][extension.OutcomeDelivered])
	}
}

func TestRoutes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	if err := store.Log(ctx, Entry{ID: "x1", Strategy: "link", Outcome: extension.OutcomeDelivered}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/downloads/?strategy=link", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var entries []Entry
		if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != "x1" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/downloads/?strategy=fetch", nil))
		if got := w.Body.String(); got != "[]\n" {
			t.Errorf("body = %q, want []", got)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/downloads/x1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/downloads/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("summary", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/downloads/summary", nil))
		var sum Summary
		if err := json.NewDecoder(w.Body).Decode(&sum); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if sum.Total != 1 {
			t.Errorf("Total = %d, want 1", sum.Total)
		}
	})
}
