package sections

import "testing"

func pageSpans() []Span {
	return []Span{
		{ID: "home", Top: 0, Height: 800},
		{ID: "about", Top: 800, Height: 600},
		{ID: "domains", Top: 1400, Height: 300},
		{ID: "timeline", Top: 1700, Height: 1600},
	}
}

func TestUpdateReportsChanges(t *testing.T) {
	tracker := NewTracker("home")
	tracker.SetSpans(pageSpans())

	tests := []struct {
		name    string
		top     float32
		active  string
		changed bool
	}{
		{"top of page", 0, "home", false},
		{"mostly home", 300, "home", false},
		{"about half visible", 550, "about", true},
		{"still about", 700, "about", false},
		{"short section fully visible", 1350, "domains", true},
		{"tall section covering viewport", 2000, "timeline", true},
		{"back to top", 0, "home", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, changed := tracker.Update(tt.top, 600)
			if active != tt.active || changed != tt.changed {
				t.Errorf("Update(%v) = (%q, %v), want (%q, %v)", tt.top, active, changed, tt.active, tt.changed)
			}
		})
	}
}

func TestUpdateWithoutViewportKeepsActive(t *testing.T) {
	tracker := NewTracker("home")
	tracker.SetSpans(pageSpans())
	if active, changed := tracker.Update(900, 0); active != "home" || changed {
		t.Errorf("Update() with empty viewport = (%q, %v)", active, changed)
	}
}

func TestOffset(t *testing.T) {
	tracker := NewTracker("home")
	tracker.SetSpans(pageSpans())
	if top, ok := tracker.Offset("domains"); !ok || top != 1400 {
		t.Errorf("Offset(domains) = (%v, %v)", top, ok)
	}
	if _, ok := tracker.Offset("missing"); ok {
		t.Error("Offset(missing) should fail")
	}
}
