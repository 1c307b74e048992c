// Package raster paints chrome into an in-memory RGBA image. The X11 and
// Win32 hosts blit the result to their windows; tests read its pixels.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"gochrome/chrome"
)

// Surface is a chrome.Surface over an *image.RGBA.
type Surface struct {
	img *image.RGBA

	// Scaler resamples icons. Defaults to draw.ApproxBiLinear.
	Scaler draw.Scaler
}

// New returns a surface of the given size. Non-positive sizes give an empty
// image that ignores all drawing.
func New(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Resize reallocates the backing image when the size differs and reports
// whether it did.
func (s *Surface) Resize(w, h int) bool {
	w, h = max(w, 0), max(h, 0)
	b := s.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return false
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return true
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Bounds returns the surface size as an image rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

// FillRect replaces the pixels under r with c. Translucent colors are stored
// as is rather than blended with the previous paint.
func (s *Surface) FillRect(r chrome.Rect, c color.Color) {
	dst := r.Image().Intersect(s.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.Draw(s.img, dst, image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) DrawImage(src image.Image, r chrome.Rect) {
	if src == nil {
		return
	}
	dst := r.Image()
	if dst.Empty() || !dst.Overlaps(s.img.Bounds()) {
		return
	}
	scaler := s.Scaler
	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}
	scaler.Scale(s.img, dst, src, src.Bounds(), draw.Over, nil)
}

// StrokeLine draws a line with a square pen of the given width by stepping
// along the major axis.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width int, c color.Color) {
	if width < 1 {
		width = 1
	}
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	half := width / 2
	u := image.NewUniform(c)
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + dx*i/steps
			y = y0 + dy*i/steps
		}
		pen := image.Rect(x-half, y-half, x-half+width, y-half+width).Intersect(s.img.Bounds())
		if !pen.Empty() {
			draw.Draw(s.img, pen, u, image.Point{}, draw.Over)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
