package staff

import "testing"

func TestValidSpacing(t *testing.T) {
	tests := []struct {
		name  string
		lines [5]int
		want  bool
	}{
		{"even spacing", [5]int{100, 150, 200, 250, 300}, true},
		{"small jitter", [5]int{100, 148, 200, 253, 300}, true},
		{"uneven", [5]int{100, 120, 200, 250, 300}, false},
		{"descending", [5]int{300, 250, 200, 150, 100}, false},
		{"duplicate line", [5]int{100, 100, 150, 200, 250}, false},
		{"just inside tolerance", [5]int{0, 10, 20, 30, 42}, true},
		{"just outside tolerance", [5]int{0, 10, 20, 30, 43}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSpacing(tt.lines); got != tt.want {
				t.Errorf("ValidSpacing(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestSystemGeometry(t *testing.T) {
	s := System{Lines: [5]int{100, 150, 200, 250, 300}}
	if s.Top() != 100 || s.Bottom() != 300 {
		t.Errorf("Top/Bottom = %d/%d", s.Top(), s.Bottom())
	}
	if got := s.Center(); got != 200 {
		t.Errorf("Center = %v, want 200", got)
	}
	if got := s.Spacing(); got != 50 {
		t.Errorf("Spacing = %v, want 50", got)
	}
}

func TestFallbackIsValid(t *testing.T) {
	fb := Fallback()
	if !ValidSpacing(fb.Lines) {
		t.Errorf("fallback staff %v violates the spacing invariant", fb.Lines)
	}
}

func TestGroup(t *testing.T) {
	// A spurious midpoint before a clean staff: the scan must slide past it.
	mids := []int{10, 100, 150, 200, 250, 300}
	systems := Group(mids)
	if len(systems) != 1 {
		t.Fatalf("expected 1 system, got %d", len(systems))
	}
	if systems[0].Lines != [5]int{100, 150, 200, 250, 300} {
		t.Errorf("wrong grouping: %v", systems[0].Lines)
	}
}

func TestGroupNonOverlapping(t *testing.T) {
	// Ten equispaced midpoints form exactly two systems, never overlapping
	// windows.
	var mids []int
	for i := 0; i < 10; i++ {
		mids = append(mids, 100+i*40)
	}
	systems := Group(mids)
	if len(systems) != 2 {
		t.Fatalf("expected 2 systems, got %d", len(systems))
	}
	if systems[0].Bottom() >= systems[1].Top() {
		t.Errorf("systems overlap: %v and %v", systems[0].Lines, systems[1].Lines)
	}
	for _, s := range systems {
		if !ValidSpacing(s.Lines) {
			t.Errorf("accepted system %v violates spacing invariant", s.Lines)
		}
	}
}

func TestGroupTooFew(t *testing.T) {
	if got := Group([]int{100, 150, 200, 250}); len(got) != 0 {
		t.Errorf("four midpoints cannot form a system, got %v", got)
	}
	if got := Group(nil); len(got) != 0 {
		t.Errorf("no midpoints should give no systems, got %v", got)
	}
}

func TestNearest(t *testing.T) {
	systems := []System{
		{Lines: [5]int{100, 150, 200, 250, 300}},
		{Lines: [5]int{500, 550, 600, 650, 700}},
	}

	if sys, ok := Nearest(systems, 180); !ok || sys.Center() != 200 {
		t.Errorf("y=180 should pick the first system, got %v ok=%v", sys.Lines, ok)
	}
	if sys, ok := Nearest(systems, 620); !ok || sys.Center() != 600 {
		t.Errorf("y=620 should pick the second system, got %v ok=%v", sys.Lines, ok)
	}
	if _, ok := Nearest(nil, 100); ok {
		t.Error("no systems should report !ok")
	}
}
