package chrome

import (
	"image"
	"testing"
)

func TestIconAspectRatio(t *testing.T) {
	p := DefaultParams()
	p.CaptionBarHeight = 28
	p.IconMarginY = 4
	ic := newIcon(image.NewRGBA(image.Rect(0, 0, 200, 100)), p)
	if ic.Height != 20 || ic.Width != 40 {
		t.Fatalf("icon = %dx%d; want 40x20", ic.Width, ic.Height)
	}
	if r := ic.Rect(p); r != (Rect{X: p.IconMarginX, Y: 4, W: 40, H: 20}) {
		t.Fatalf("icon rect = %+v", r)
	}
}

func TestIconMissingOrFlatSource(t *testing.T) {
	p := DefaultParams()
	if ic := newIcon(nil, p); ic != nil {
		t.Fatalf("expected nil icon for nil source")
	}
	if ic := newIcon(image.NewRGBA(image.Rect(0, 0, 10, 0)), p); ic != nil {
		t.Fatalf("expected nil icon for zero height source")
	}
}

func TestIconRecomputedOnConfigChange(t *testing.T) {
	f := NewFrame(WithIconSource(image.NewRGBA(image.Rect(0, 0, 200, 100))))
	if got := f.Icon().Height; got != 22 {
		t.Fatalf("default logo height = %d", got)
	}

	f.SetCaptionBarHeight(48)
	if f.Icon().Height != 40 || f.Icon().Width != 80 {
		t.Fatalf("after caption change icon = %dx%d", f.Icon().Width, f.Icon().Height)
	}

	f.SetIconMarginY(9)
	if f.Icon().Height != 30 || f.Icon().Width != 60 {
		t.Fatalf("after margin change icon = %dx%d", f.Icon().Width, f.Icon().Height)
	}

	f.SetIconSource(image.NewRGBA(image.Rect(0, 0, 30, 30)))
	if f.Icon().Width != 30 {
		t.Fatalf("after source change icon width = %d", f.Icon().Width)
	}

	f.SetIconSource(nil)
	if f.Icon() != nil {
		t.Fatalf("icon should be removed")
	}
}

func TestFrameSettersRelayoutAndInvalidate(t *testing.T) {
	invalidations := 0
	f := NewFrame(
		WithClientSize(Size{Width: 400, Height: 300}),
		WithInvalidator(func() { invalidations++ }),
	)
	closeX := func() int { return f.Controls().Get(ControlClose).Bounds.X }

	steps := []struct {
		name  string
		apply func()
		check func() bool
	}{
		{"control width", func() { f.SetControlWidth(20) }, func() bool { return closeX() == 380 }},
		{"control height", func() { f.SetControlHeight(12) }, func() bool { return f.Controls().Get(ControlClose).Bounds.H == 12 }},
		{"control size", func() { f.SetControlSize(25, 25) }, func() bool { return closeX() == 375 }},
		{"border", func() { f.SetBorderWidth(8) }, func() bool { return f.Regions().CaptionBar.X == 8 }},
		{"caption", func() { f.SetCaptionBarHeight(40) }, func() bool { return f.Regions().ContentArea.Y == 48 }},
		{"padding", func() { f.SetContentPadding(Insets{1, 2, 3, 4}) }, func() bool { return f.ContentBounds().X == 9 }},
		{"icon margin", func() { f.SetIconMargin(3, 5) }, func() bool { return f.Params().IconMarginX == 3 }},
		{"icon margin x", func() { f.SetIconMarginX(6) }, func() bool { return f.Params().IconMarginX == 6 }},
		{"window color", func() { f.SetWindowBackColor(NewColor(1, 2, 3, 255)) }, func() bool { return f.Theme().WindowBackColor.R == 1 }},
		{"content color", func() { f.SetContentBackColor(NewColor(4, 5, 6, 255)) }, func() bool { return f.Theme().ContentBackColor.R == 4 }},
		{"hover color", func() { f.SetControlHoverColor(NewColor(7, 8, 9, 255)) }, func() bool { return f.Theme().ControlHoverColor.R == 7 }},
		{"params", func() { f.SetParams(DefaultParams()) }, func() bool { return closeX() == 365 }},
	}
	for _, st := range steps {
		before := invalidations
		st.apply()
		if invalidations == before {
			t.Errorf("%s: no repaint requested", st.name)
		}
		if !st.check() {
			t.Errorf("%s: change not applied", st.name)
		}
		if f.Controls().Len() != 2 {
			t.Fatalf("%s: control count = %d", st.name, f.Controls().Len())
		}
	}
}

func TestFrameSizeChanged(t *testing.T) {
	invalidations := 0
	f := NewFrame(WithInvalidator(func() { invalidations++ }))
	if !f.OnSizeChanged(Size{Width: 400, Height: 300}) {
		t.Fatalf("expected size change")
	}
	if f.OnSizeChanged(Size{Width: 400, Height: 300}) {
		t.Fatalf("same size reported as change")
	}
	if invalidations != 1 {
		t.Fatalf("invalidations = %d; want 1", invalidations)
	}
	if got := f.Controls().Get(ControlMinimize).Bounds.X; got != 400-3*f.Params().ControlWidth {
		t.Fatalf("minimize x = %d", got)
	}
	if z := f.OnNonClientHitTest(Point{X: 200, Y: 298}); z != ZoneBottom {
		t.Fatalf("hit test after resize = %v", z)
	}
	f.OnSizeChanged(Size{Width: 400, Height: 500})
	if z := f.OnNonClientHitTest(Point{X: 200, Y: 298}); z != ZoneNone {
		t.Fatalf("hit test used a stale size: %v", z)
	}
}

func TestFrameHitTestDefersToControls(t *testing.T) {
	f := NewFrame(WithClientSize(Size{Width: 400, Height: 300}))
	closeCtl := f.Controls().Get(ControlClose)
	inside := Point{X: closeCtl.Bounds.X + 10, Y: 10}
	if z := f.OnNonClientHitTest(inside); z != ZoneNone {
		t.Fatalf("control point classified %v", z)
	}
	if z := ClassifyAt(inside, f.Size(), f.Params()); z != ZoneCaption {
		t.Fatalf("classifier alone should report caption, got %v", z)
	}
	if z := f.OnNonClientHitTest(Point{X: 100, Y: 20}); z != ZoneCaption {
		t.Fatalf("caption point classified %v", z)
	}
}

func TestFrameScreenHitTest(t *testing.T) {
	f := NewFrame(WithClientSize(Size{Width: 400, Height: 300}))
	origin := Point{X: 1000, Y: 500}
	if z := f.OnScreenHitTest(Point{X: 1002, Y: 502}, origin); z != ZoneTopLeft {
		t.Fatalf("screen hit test = %v", z)
	}
}

func TestFrameCommands(t *testing.T) {
	var got []Command
	f := NewFrame(WithClientSize(Size{Width: 400, Height: 300}))
	f.Commands().Handle = func(c Command) { got = append(got, c) }

	minCtl := f.Controls().Get(ControlMinimize)
	pt := Point{X: minCtl.Bounds.X + 2, Y: 2}
	if !f.OnPointerDown(pt) {
		t.Fatalf("press missed the minimize control")
	}
	if cmd := f.OnPointerUp(pt); cmd != CommandMinimize {
		t.Fatalf("command = %v", cmd)
	}

	closeCtl := f.Controls().Get(ControlClose)
	pt = Point{X: closeCtl.Bounds.X + 2, Y: 2}
	f.OnPointerDown(pt)
	f.OnPointerUp(pt)

	if len(got) != 2 || got[0] != CommandMinimize || got[1] != CommandClose {
		t.Fatalf("callback got %v", got)
	}
	if n := len(f.Commands().Commands); n != 2 {
		t.Fatalf("channel holds %d commands; want 2", n)
	}
	if f.OnPointerDown(Point{X: 100, Y: 100}) {
		t.Fatalf("press in content should not hit a control")
	}
	if cmd := f.OnPointerUp(Point{X: 100, Y: 100}); cmd != CommandNone {
		t.Fatalf("release in content = %v", cmd)
	}
}

func TestPointerUpRepaintsOnlyArmedControls(t *testing.T) {
	invalidations := 0
	f := NewFrame(
		WithClientSize(Size{Width: 400, Height: 300}),
		WithInvalidator(func() { invalidations++ }),
	)

	f.OnPointerUp(Point{X: 100, Y: 100})
	if invalidations != 0 {
		t.Fatalf("release in content requested %d repaints", invalidations)
	}

	closeCtl := f.Controls().Get(ControlClose)
	pt := Point{X: closeCtl.Bounds.X + 2, Y: 2}
	f.OnPointerDown(pt)
	before := invalidations
	f.OnPointerUp(Point{X: 100, Y: 100})
	if invalidations != before+1 {
		t.Fatalf("releasing an armed control should repaint once, got %d", invalidations-before)
	}
	if closeCtl.Pressed {
		t.Fatalf("control still pressed after release")
	}
}

func TestCommandHandlerDropsWhenFull(t *testing.T) {
	h := &CommandHandler{Commands: make(chan Command, 1)}
	h.Emit(CommandClose)
	h.Emit(CommandClose)
	if len(h.Commands) != 1 {
		t.Fatalf("expected 1 buffered command")
	}
	var nilHandler *CommandHandler
	nilHandler.Emit(CommandClose)
}

func TestFrameRelease(t *testing.T) {
	f := NewFrame(WithIconSource(image.NewRGBA(image.Rect(0, 0, 4, 4))))
	ch := f.Commands().Commands
	f.Release()
	if f.Icon() != nil || f.IconSource() != nil {
		t.Fatalf("icon not released")
	}
	if _, ok := <-ch; ok {
		t.Fatalf("command channel not closed")
	}
	f.Commands().Emit(CommandClose)
	f.Release()
}

func TestNewFrameDefaults(t *testing.T) {
	f := NewFrame()
	p := f.Params()
	if p.CaptionBarHeight != 30 || p.BorderWidth != 5 || p.ControlWidth != 35 || p.ControlHeight != 35 {
		t.Fatalf("defaults = %+v", p)
	}
	if p.IconMarginX != 2 || p.IconMarginY != 4 || p.ContentPadding != (Insets{5, 5, 5, 5}) {
		t.Fatalf("defaults = %+v", p)
	}
	if f.Controls().Len() != 2 {
		t.Fatalf("controls not created at construction")
	}
	if f.Theme() != LightTheme() {
		t.Fatalf("default theme = %+v", f.Theme())
	}
}
