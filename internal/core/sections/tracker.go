// Package sections reports which page section is currently in view.
package sections

import "sync"

// VisibleThreshold is the fraction of a section that must be on screen.
const VisibleThreshold = 0.5

// Span is the vertical extent of one section within the scrolled content.
type Span struct {
	ID     string
	Top    float32
	Height float32
}

// Tracker remembers the active section between scroll updates.
type Tracker struct {
	mu     sync.Mutex
	spans  []Span
	active string
}

// NewTracker creates a tracker with initial as the active section.
func NewTracker(initial string) *Tracker {
	return &Tracker{active: initial}
}

// SetSpans replaces the measured section extents, in page order.
func (tracker *Tracker) SetSpans(spans []Span) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.spans = append(tracker.spans[:0], spans...)
}

// Active returns the current section ID.
func (tracker *Tracker) Active() string {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.active
}

// Update evaluates the viewport and reports the active section when it
// changed. A section tall enough to overflow the viewport counts as visible
// once it covers half the viewport.
func (tracker *Tracker) Update(viewTop, viewHeight float32) (string, bool) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if viewHeight <= 0 {
		return tracker.active, false
	}

	viewBottom := viewTop + viewHeight
	for _, span := range tracker.spans {
		if span.Height <= 0 {
			continue
		}
		top := maxFloat(span.Top, viewTop)
		bottom := minFloat(span.Top+span.Height, viewBottom)
		if bottom <= top {
			continue
		}
		if (bottom-top)/minFloat(span.Height, viewHeight) < VisibleThreshold {
			continue
		}
		if span.ID == tracker.active {
			return tracker.active, false
		}
		tracker.active = span.ID
		return tracker.active, true
	}
	return tracker.active, false
}

// Offset returns the scroll position of id.
func (tracker *Tracker) Offset(id string) (float32, bool) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	for _, span := range tracker.spans {
		if span.ID == id {
			return span.Top, true
		}
	}
	return 0, false
}

func minFloat(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
