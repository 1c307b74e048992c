package chrome

import "testing"

func TestControlPositions(t *testing.T) {
	p := DefaultParams()
	p.ControlWidth = 20
	var cs ControlSet
	cs.Update(400, p)

	if got := cs.Get(ControlClose).Bounds.X; got != 380 {
		t.Fatalf("close x = %d; want 380", got)
	}
	if got := cs.Get(ControlMinimize).Bounds.X; got != 340 {
		t.Fatalf("minimize x = %d; want 340", got)
	}
	for _, c := range cs.Controls() {
		if c.Bounds.Y != 0 || c.Bounds.W != 20 || c.Bounds.H != p.ControlHeight {
			t.Fatalf("%v bounds = %+v", c.Kind, c.Bounds)
		}
	}
}

func TestControlUpdateIdempotent(t *testing.T) {
	p := DefaultParams()
	var cs ControlSet
	cs.Update(400, p)
	first := cs.Get(ControlClose)
	for i := 0; i < 5; i++ {
		cs.Update(400, p)
	}
	if cs.Len() != 2 {
		t.Fatalf("expected 2 controls, got %d", cs.Len())
	}
	if cs.Get(ControlClose) != first {
		t.Fatalf("update replaced the close control")
	}

	cs.Update(600, p)
	if cs.Len() != 2 {
		t.Fatalf("resize added controls: %d", cs.Len())
	}
	if got := cs.Get(ControlClose).Bounds.X; got != 600-p.ControlWidth {
		t.Fatalf("close not repositioned: %d", got)
	}
}

func TestControlSlotTwoIsFree(t *testing.T) {
	p := DefaultParams()
	var cs ControlSet
	cs.Update(400, p)
	free := Point{X: 400 - 2*p.ControlWidth + 1, Y: 1}
	if c := cs.At(free); c != nil {
		t.Fatalf("slot 2 is occupied by %v", c.Kind)
	}
}

func TestControlActivation(t *testing.T) {
	p := DefaultParams()
	var cs ControlSet
	cs.Update(400, p)
	closePt := Point{X: 400 - p.ControlWidth/2, Y: p.ControlHeight / 2}
	minPt := Point{X: 400 - 3*p.ControlWidth + 1, Y: 1}

	if !cs.press(closePt) {
		t.Fatalf("press on close missed")
	}
	if !cs.Get(ControlClose).Pressed {
		t.Fatalf("close not pressed")
	}
	if cmd := cs.release(closePt); cmd != CommandClose {
		t.Fatalf("release = %v; want close", cmd)
	}

	cs.press(minPt)
	if cmd := cs.release(minPt); cmd != CommandMinimize {
		t.Fatalf("release = %v; want minimize", cmd)
	}

	// Releasing outside the pressed control cancels.
	cs.press(minPt)
	if cmd := cs.release(Point{X: 10, Y: 100}); cmd != CommandNone {
		t.Fatalf("release outside = %v; want none", cmd)
	}
	if cmd := cs.release(minPt); cmd != CommandNone {
		t.Fatalf("release without press = %v", cmd)
	}
}

func TestControlHover(t *testing.T) {
	p := DefaultParams()
	var cs ControlSet
	cs.Update(400, p)
	closePt := Point{X: 399, Y: 0}
	if !cs.hover(closePt) {
		t.Fatalf("expected hover change")
	}
	if cs.hover(closePt) {
		t.Fatalf("hovering the same point twice should not change state")
	}
	if !cs.Get(ControlClose).Hovered || cs.Get(ControlMinimize).Hovered {
		t.Fatalf("wrong hover flags")
	}
	if !cs.leave() || cs.Get(ControlClose).Hovered {
		t.Fatalf("leave should clear hover")
	}
}
