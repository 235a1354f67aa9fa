package extension

import (
	"sync"
	"time"
)

// State is the download state of one visitor.
type State int

const (
	Idle State = iota
	Downloading
)

func (s State) String() string {
	if s == Downloading {
		return "downloading"
	}
	return "idle"
}

// Status holds a visitor's download state and fans transitions out to
// subscribers. The zero value is Idle and ready to use.
type Status struct {
	mu      sync.Mutex
	state   State
	subs    map[int]chan State
	nextSub int

	// afterFunc schedules delayed resets; nil means time.AfterFunc.
	afterFunc func(time.Duration, func())
}

func (s *Status) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Downloading reports whether a download attempt is in progress.
func (s *Status) Downloading() bool {
	return s.State() == Downloading
}

// Subscribe returns a channel receiving the latest state after each
// transition. Slow readers only see the most recent state. Call cancel to
// stop receiving.
func (s *Status) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan State)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// begin moves Idle to Downloading. It returns false if an attempt is
// already running.
func (s *Status) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Downloading {
		return false
	}
	s.setLocked(Downloading)
	return true
}

func (s *Status) finish() {
	s.mu.Lock()
	s.setLocked(Idle)
	s.mu.Unlock()
}

func (s *Status) finishAfter(d time.Duration) {
	after := s.afterFunc
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	after(d, s.finish)
}

func (s *Status) setLocked(state State) {
	s.state = state
	for _, ch := range s.subs {
		select {
		case ch <- state:
		default:
			// Replace the unread value with the newer one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}
