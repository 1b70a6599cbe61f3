package world

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v, n int
		want int
	}{
		{"in range", 5, 64, 5},
		{"zero", 0, 64, 0},
		{"past edge", 64, 64, 0},
		{"far past edge", 130, 64, 2},
		{"negative", -1, 64, 63},
		{"far negative", -65, 64, 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.v, tt.n); got != tt.want {
				t.Errorf("Wrap(%d, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestFrameToroidalAccess(t *testing.T) {
	var f Frame
	f.Set(-1, -1, Alive)
	if f[Size-1][Size-1] != Alive {
		t.Error("Set(-1, -1) should wrap to the far corner")
	}
	if f.Get(Size-1, -1+Size*2) != Alive {
		t.Error("Get should wrap on both axes")
	}
}

func TestLiveCount(t *testing.T) {
	var f Frame
	if f.LiveCount() != 0 {
		t.Errorf("fresh frame LiveCount = %d, want 0", f.LiveCount())
	}
	if !f.Empty() {
		t.Error("fresh frame should be empty")
	}
	f[0][0] = Alive
	f[10][20] = Alive
	f[Size-1][Size-1] = Alive
	if got := f.LiveCount(); got != 3 {
		t.Errorf("LiveCount = %d, want 3", got)
	}
	if f.Empty() {
		t.Error("frame with live cells should not be empty")
	}
}

func TestNeighborsWrapAround(t *testing.T) {
	var f Frame
	// Ring around the corner cell, crossing both edges.
	f.Set(-1, -1, Alive)
	f.Set(-1, 0, Alive)
	f.Set(-1, 1, Alive)
	f.Set(0, -1, Alive)
	f.Set(0, 1, Alive)
	f.Set(1, -1, Alive)
	f.Set(1, 0, Alive)
	f.Set(1, 1, Alive)

	if got := f.Neighbors(0, 0); got != 8 {
		t.Errorf("corner Neighbors = %d, want 8", got)
	}
	// The center cell itself does not count.
	f.Set(0, 0, Alive)
	if got := f.Neighbors(0, 0); got != 8 {
		t.Errorf("Neighbors with live center = %d, want 8", got)
	}
}
