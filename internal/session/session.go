package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/knightsbridge/faqsite/internal/extension"
	"github.com/knightsbridge/faqsite/internal/faq"
	"github.com/knightsbridge/faqsite/internal/install"
)

// Session is the page state owned by one visitor.
type Session struct {
	ID           string
	Accordion    *faq.Accordion
	Instructions *install.Panel
	Download     *extension.Status

	mu       sync.Mutex
	dark     bool
	lastSeen time.Time
}

func (s *Session) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// ToggleTheme flips between dark and light and returns the new dark flag.
func (s *Session) ToggleTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = !s.dark
	return s.dark
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store keeps sessions in memory.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	ttl         time.Duration
	defaultDark bool
	now         func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration, defaultDark bool) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		defaultDark: defaultDark,
		now:         time.Now,
	}
}

// Get returns the session with the given id and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		sess.touch(s.now())
	}
	return sess, ok
}

// Create starts a new session with every panel collapsed and no download
// in progress.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:           uuid.New().String(),
		Accordion:    faq.NewAccordion(faq.Entries()),
		Instructions: &install.Panel{},
		Download:     &extension.Status{},
		dark:         s.defaultDark,
		lastSeen:     s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle longer than the ttl. Sessions with a download
// in progress are kept. It returns the number removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl && !sess.Download.Downloading() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
