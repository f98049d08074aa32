package header

import "testing"

func settle(t *testing.T, s *Scroller) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !s.Step() {
			return
		}
	}
	t.Fatalf("animation did not settle, offset %v target %v", s.Offset(), s.Target())
}

func TestScrollerSnapsToNearestAnchor(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{"near top expands", 10, 0},
		{"near bottom collapses", 80, 90},
		{"midpoint collapses", 45, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(600, DefaultFrequency, DefaultDamping)
			s.ScrollBy(tt.start)

			if !s.EndGesture() {
				t.Fatalf("expected snap to start at %v", tt.start)
			}
			if s.Target() != tt.want {
				t.Fatalf("target = %v; want %v", s.Target(), tt.want)
			}

			settle(t, s)
			if s.Offset() != tt.want {
				t.Errorf("settled at %v; want %v", s.Offset(), tt.want)
			}
			if PhaseOf(s.Offset()) == Collapsing {
				t.Errorf("header left in collapsing phase")
			}
		})
	}
}

func TestScrollerEndGestureNoopAtAnchors(t *testing.T) {
	s := NewScroller(600, DefaultFrequency, DefaultDamping)
	if s.EndGesture() {
		t.Error("expected no snap at offset 0")
	}

	s.ScrollBy(90)
	if s.EndGesture() {
		t.Error("expected no snap at offset 90")
	}

	s.ScrollBy(200)
	if s.EndGesture() {
		t.Error("expected no snap past the collapse range")
	}
	if s.Offset() != 290 {
		t.Errorf("offset = %v; want 290", s.Offset())
	}
}

func TestScrollerScrollCancelsAnimation(t *testing.T) {
	s := NewScroller(600, DefaultFrequency, DefaultDamping)
	s.ScrollBy(30)
	s.EndGesture()
	s.Step()

	s.ScrollBy(5)
	if s.Animating() {
		t.Error("user scroll should cancel the snap animation")
	}
}

func TestScrollerClampsAndDetectsPull(t *testing.T) {
	s := NewScroller(200, DefaultFrequency, DefaultDamping)

	if pulled := s.ScrollBy(-10); !pulled {
		t.Error("scrolling up at the top should report a pull")
	}
	if s.Offset() != 0 {
		t.Errorf("offset = %v; want 0", s.Offset())
	}

	s.ScrollBy(20)
	if pulled := s.ScrollBy(-40); pulled {
		t.Error("scroll that starts below the top is not a pull")
	}
	if s.Offset() != 0 {
		t.Errorf("offset = %v; want clamped 0", s.Offset())
	}

	s.ScrollBy(1000)
	if s.Offset() != 200 {
		t.Errorf("offset = %v; want clamped 200", s.Offset())
	}
}

func TestScrollerContentMaxNeverBelowCollapse(t *testing.T) {
	s := NewScroller(10, 0, 0)
	if s.ContentMax() != MaxScroll {
		t.Errorf("ContentMax = %v; want %v", s.ContentMax(), MaxScroll)
	}

	s.ScrollTo(90)
	s.SetContentMax(500)
	if s.Offset() != 90 {
		t.Errorf("offset changed on resize: %v", s.Offset())
	}
}

func TestScrollerToggle(t *testing.T) {
	s := NewScroller(600, DefaultFrequency, DefaultDamping)

	s.Toggle()
	settle(t, s)
	if s.Offset() != MaxScroll {
		t.Fatalf("toggle from expanded settled at %v; want %v", s.Offset(), MaxScroll)
	}

	s.Toggle()
	settle(t, s)
	if s.Offset() != MinScroll {
		t.Fatalf("toggle from collapsed settled at %v; want %v", s.Offset(), MinScroll)
	}
}
