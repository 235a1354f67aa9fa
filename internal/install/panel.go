package install

import "sync"

// Visibility is the state of the instructions panel.
type Visibility int

const (
	Collapsed Visibility = iota
	Expanded
)

func (v Visibility) String() string {
	if v == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Panel holds the show/hide state of the instructions. The zero value is
// collapsed.
type Panel struct {
	mu sync.Mutex
	v  Visibility
}

// Toggle flips the panel and returns the new visibility.
func (p *Panel) Toggle() Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.v == Expanded {
		p.v = Collapsed
	} else {
		p.v = Expanded
	}
	return p.v
}

func (p *Panel) Visibility() Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.v
}

// Visible reports whether the steps should be rendered.
func (p *Panel) Visible() bool {
	return p.Visibility() == Expanded
}
