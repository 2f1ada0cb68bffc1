package sprite

import (
	"math"
	"testing"
)

// testCat builds a cat with image-less strips so tests run headless.
func testCat() *Cat {
	mkStrip := func(frames int) *Strip {
		return &Strip{FW: 14, FH: 12, Frames: frames, FrameDur: 0.1}
	}
	return &Cat{
		X:         40,
		Scale:     3,
		Speed:     140,
		ArriveEps: 6,
		state:     IdleBack,
		strips: map[State]*Strip{
			IdleBack:  mkStrip(2),
			WalkLeft:  mkStrip(2),
			WalkRight: mkStrip(2),
			WalkUp:    mkStrip(2),
		},
	}
}

func TestCat_PlaceAtBottom(t *testing.T) {
	c := testCat()
	c.PlaceAtBottom(800, 600)

	// 12px frame at scale 3 with a 20px margin above the bottom edge
	want := 600.0 - 12*3 - 20
	if c.Y != want {
		t.Errorf("Y = %v; want %v", c.Y, want)
	}
}

func TestCat_GoToPicksWalkState(t *testing.T) {
	c := testCat()
	c.PlaceAtBottom(800, 600)

	c.GoTo(700, 0)
	if c.State() != WalkRight {
		t.Errorf("state after GoTo right = %v; want WalkRight", c.State())
	}
	if !c.Moving() {
		t.Error("cat should be moving after GoTo")
	}

	c.X = 750
	c.GoTo(100, 0)
	if c.State() != WalkLeft {
		t.Errorf("state after GoTo left = %v; want WalkLeft", c.State())
	}
}

func TestCat_UpdateWalksTowardTarget(t *testing.T) {
	c := testCat()
	c.PlaceAtBottom(800, 600)
	startX := c.X

	c.GoTo(400, 0)
	c.Update(0.1)

	if c.X <= startX {
		t.Errorf("X = %v after walking right; want > %v", c.X, startX)
	}
	// Moves at most Speed*dt pixels per update.
	if moved := c.X - startX; moved > c.Speed*0.1+1e-9 {
		t.Errorf("moved %v in one update; want <= %v", moved, c.Speed*0.1)
	}
}

func TestCat_ArrivesAndIdles(t *testing.T) {
	c := testCat()
	c.PlaceAtBottom(800, 600)
	c.GoTo(c.X+float64(c.cur().FW)*c.Scale*0.5+3, 0) // within ArriveEps

	c.Update(0.01)

	if c.Moving() {
		t.Error("cat should have arrived")
	}
	if c.State() != IdleBack {
		t.Errorf("state after arrival = %v; want IdleBack", c.State())
	}
}

func TestCat_FrameAdvances(t *testing.T) {
	c := testCat()

	c.Update(0.1) // one full frame duration
	if c.Frame() != 1 {
		t.Errorf("frame = %d after one FrameDur; want 1", c.Frame())
	}

	c.Update(0.1) // wraps around a 2 frame strip
	if c.Frame() != 0 {
		t.Errorf("frame = %d after two FrameDur; want 0", c.Frame())
	}
}

func TestCat_ClampToWindow(t *testing.T) {
	c := testCat()
	c.X = -15
	c.Y = 1000
	c.ClampToWindow(800, 600)

	if c.X != 0 {
		t.Errorf("X = %v; want 0", c.X)
	}
	wantY := 600 - float64(c.cur().FH)*c.Scale
	if math.Abs(c.Y-wantY) > 1e-9 {
		t.Errorf("Y = %v; want %v", c.Y, wantY)
	}
}

func TestBuildStripsCoverAllStates(t *testing.T) {
	for st, frames := range catFrames {
		if len(frames) == 0 {
			t.Fatalf("state %v has no frames", st)
		}
		fh := len(frames[0])
		fw := len(frames[0][0])
		for i, design := range frames {
			if len(design) != fh {
				t.Errorf("state %v frame %d height = %d; want %d", st, i, len(design), fh)
			}
			for y, row := range design {
				if len(row) != fw {
					t.Errorf("state %v frame %d row %d width = %d; want %d", st, i, y, len(row), fw)
				}
			}
		}
	}
}
