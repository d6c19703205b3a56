package gesture

import (
	"testing"
	"time"
)

// TestDetector_Classification verifies that the gesture is a pure
// function of elapsed time with the 500ms boundary inclusive on long.
func TestDetector_Classification(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    Gesture
	}{
		{"instant", 0, Short},
		{"short_200ms", 200 * time.Millisecond, Short},
		{"just_under_threshold", 499 * time.Millisecond, Short},
		{"exactly_threshold", 500 * time.Millisecond, Long},
		{"long_600ms", 600 * time.Millisecond, Long},
		{"very_long", 5 * time.Second, Long},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Detector
			d.Press(base)
			if got := d.Release(base.Add(tt.elapsed)); got != tt.want {
				t.Errorf("Release after %v = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

// TestDetector_ReleaseWithoutPress verifies that an unmatched release
// produces no gesture.
func TestDetector_ReleaseWithoutPress(t *testing.T) {
	var d Detector
	if got := d.Release(time.Now()); got != None {
		t.Errorf("Release without Press = %v, want None", got)
	}
}

// TestDetector_DuplicateRelease verifies that the stored timestamp is
// cleared on release: a second release is a no-op.
func TestDetector_DuplicateRelease(t *testing.T) {
	base := time.Now()

	var d Detector
	d.Press(base)
	if got := d.Release(base.Add(100 * time.Millisecond)); got != Short {
		t.Fatalf("first Release = %v, want Short", got)
	}
	if got := d.Release(base.Add(time.Second)); got != None {
		t.Errorf("second Release = %v, want None", got)
	}
}

// TestDetector_DuplicatePress verifies that a press while already
// pressed keeps the original begin timestamp.
func TestDetector_DuplicatePress(t *testing.T) {
	base := time.Now()

	var d Detector
	d.Press(base)
	d.Press(base.Add(400 * time.Millisecond)) // ignored
	if got := d.Release(base.Add(600 * time.Millisecond)); got != Long {
		t.Errorf("Release = %v, want Long measured from the first press", got)
	}
}

// TestDetector_Reusable verifies the detector cycles cleanly through
// multiple press/release pairs.
func TestDetector_Reusable(t *testing.T) {
	base := time.Now()

	var d Detector
	for i := 0; i < 3; i++ {
		start := base.Add(time.Duration(i) * time.Second)
		d.Press(start)
		if got := d.Release(start.Add(10 * time.Millisecond)); got != Short {
			t.Fatalf("cycle %d: Release = %v, want Short", i, got)
		}
	}
}
