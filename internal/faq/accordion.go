package faq

import (
	"errors"
	"sync"
)

// ErrUnknownEntry is returned when an accordion operation names an id that
// is not part of the list.
var ErrUnknownEntry = errors.New("faq: unknown entry")

// Accordion tracks which FAQ item is open. It is single-select and
// collapsible: at most one item is expanded, and the open item can be closed
// leaving none expanded.
type Accordion struct {
	mu       sync.Mutex
	ids      map[string]bool
	expanded string
}

// NewAccordion creates a fully collapsed accordion over the given entries.
func NewAccordion(items []Entry) *Accordion {
	ids := make(map[string]bool, len(items))
	for _, e := range items {
		ids[e.ID] = true
	}
	return &Accordion{ids: ids}
}

// Toggle expands id, collapsing whichever item was open, or collapses id if
// it is the one currently expanded.
func (a *Accordion) Toggle(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ids[id] {
		return ErrUnknownEntry
	}
	if a.expanded == id {
		a.expanded = ""
	} else {
		a.expanded = id
	}
	return nil
}

// Expand opens id and closes any other item.
func (a *Accordion) Expand(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ids[id] {
		return ErrUnknownEntry
	}
	a.expanded = id
	return nil
}

// Collapse closes the open item, if any.
func (a *Accordion) Collapse() {
	a.mu.Lock()
	a.expanded = ""
	a.mu.Unlock()
}

// Expanded returns the id of the open item.
func (a *Accordion) Expanded() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expanded, a.expanded != ""
}

func (a *Accordion) IsExpanded(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return id != "" && a.expanded == id
}
