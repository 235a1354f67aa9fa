package session

import (
	"testing"
	"time"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour, true)
	sess := store.Create()

	if sess.ID == "" {
		t.Fatal("expected generated session ID")
	}
	if !sess.Dark() {
		t.Error("new session should use the default theme")
	}
	if sess.Instructions.Visible() {
		t.Error("instructions should start collapsed")
	}
	if _, ok := sess.Accordion.Expanded(); ok {
		t.Error("accordion should start collapsed")
	}
	if sess.Download.Downloading() {
		t.Error("download should start idle")
	}

	got, ok := store.Get(sess.ID)
	if !ok || got != sess {
		t.Error("Get should return the created session")
	}
	if _, ok := store.Get("unknown"); ok {
		t.Error("Get of unknown id should fail")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewStore(time.Hour, false)
	a, b := store.Create(), store.Create()

	a.Instructions.Toggle()
	_ = a.Accordion.Expand("1")
	a.ToggleTheme()

	if b.Instructions.Visible() || b.Accordion.IsExpanded("1") || b.Dark() {
		t.Error("state of one session leaked into another")
	}
}

func TestToggleTheme(t *testing.T) {
	store := NewStore(time.Hour, true)
	sess := store.Create()
	if sess.ToggleTheme() {
		t.Error("first toggle from dark should give light")
	}
	if !sess.ToggleTheme() {
		t.Error("second toggle should restore dark")
	}
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute, true)
	store.now = func() time.Time { return now }

	stale := store.Create()
	fresh := store.Create()

	now = now.Add(2 * time.Minute)
	store.Get(fresh.ID)

	if n := store.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if _, ok := store.Get(stale.ID); ok {
		t.Error("stale session should be gone")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}
