package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"gochrome/chrome"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPaintFramePixels(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	f := chrome.NewFrame(
		chrome.WithClientSize(chrome.Size{Width: 400, Height: 300}),
		chrome.WithIconSource(solid(200, 100, red)),
	)
	th := f.Theme()
	s := New(400, 300)
	f.OnPaint(s)
	img := s.Image()

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"left border", 2, 150, th.WindowBackColor.ToRGBA()},
		{"bottom border", 200, 297, th.WindowBackColor.ToRGBA()},
		{"caption", 100, 20, th.WindowBackColor.ToRGBA()},
		{"content", 200, 150, th.ContentBackColor.ToRGBA()},
		{"icon", 20, 15, red},
		{"close background", 367, 2, th.WindowBackColor.ToRGBA()},
		{"close glyph", 382, 17, th.GlyphColor.ToRGBA()},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d,%d): got %v want %v", c.name, c.x, c.y, got, c.want)
		}
	}

	// Icon is 44x22 at (2,4); the caption shows just past it.
	if got := img.RGBAAt(47, 15); got != th.WindowBackColor.ToRGBA() {
		t.Errorf("pixel right of icon: got %v", got)
	}
}

func TestPaintHoveredControl(t *testing.T) {
	f := chrome.NewFrame(chrome.WithClientSize(chrome.Size{Width: 400, Height: 300}))
	th := f.Theme()
	s := New(400, 300)

	if !f.OnPointerMove(chrome.Point{X: 380, Y: 17}) {
		t.Fatalf("expected hover change over close control")
	}
	f.OnPaint(s)
	if got := s.Image().RGBAAt(367, 2); got != th.ControlHoverColor.ToRGBA() {
		t.Fatalf("hovered close background: got %v", got)
	}
	if got := s.Image().RGBAAt(300, 2); got != th.WindowBackColor.ToRGBA() {
		t.Fatalf("minimize should stay unhovered: got %v", got)
	}
}

func TestRepaintWithTranslucentColors(t *testing.T) {
	back := chrome.NewColor(128, 0, 0, 128)
	f := chrome.NewFrame(
		chrome.WithClientSize(chrome.Size{Width: 400, Height: 300}),
		chrome.WithWindowBackColor(back),
		chrome.WithControlHoverColor(chrome.NewColor(0, 0, 100, 100)),
	)
	s := New(400, 300)
	f.OnPaint(s)
	first := bytes.Clone(s.Image().Pix)
	if got := s.Image().RGBAAt(1, 50); got != back.ToRGBA() {
		t.Fatalf("left border after first paint: got %v want %v", got, back.ToRGBA())
	}

	f.OnPaint(s)
	if got := s.Image().RGBAAt(1, 50); got != back.ToRGBA() {
		t.Fatalf("left border after second paint: got %v", got)
	}
	if !bytes.Equal(first, s.Image().Pix) {
		t.Fatalf("second paint changed pixels")
	}

	f.OnPointerMove(chrome.Point{X: 380, Y: 17})
	f.OnPaint(s)
	f.OnPointerLeave()
	f.OnPaint(s)
	if got, want := s.Image().RGBAAt(367, 2), first[s.Image().PixOffset(367, 2)]; got.R != want {
		t.Fatalf("close background after hover and leave: got %v", got)
	}
	if !bytes.Equal(first, s.Image().Pix) {
		t.Fatalf("hover left residue after leave")
	}
}

func TestPaintDegenerateSize(t *testing.T) {
	f := chrome.NewFrame(chrome.WithClientSize(chrome.Size{Width: 6, Height: 4}))
	s := New(6, 4)
	f.OnPaint(s)

	s = New(-3, -3)
	if !s.Bounds().Empty() {
		t.Fatalf("expected empty surface, got %v", s.Bounds())
	}
	f.OnPaint(s)
}

func TestResize(t *testing.T) {
	s := New(10, 10)
	if s.Resize(10, 10) {
		t.Fatalf("same size should not reallocate")
	}
	if !s.Resize(20, 5) {
		t.Fatalf("expected reallocation")
	}
	if b := s.Bounds(); b.Dx() != 20 || b.Dy() != 5 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestStrokeLineClipped(t *testing.T) {
	s := New(10, 10)
	c := color.RGBA{G: 255, A: 255}
	s.StrokeLine(-5, 5, 20, 5, 1, c)
	for x := 0; x < 10; x++ {
		if got := s.Image().RGBAAt(x, 5); got != c {
			t.Fatalf("pixel %d not stroked: %v", x, got)
		}
	}
	if got := s.Image().RGBAAt(5, 4); got.A != 0 {
		t.Fatalf("pen wider than width 1: %v", got)
	}
}
