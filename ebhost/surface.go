package ebhost

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gochrome/chrome"
)

var (
	fillRectFn   = vector.DrawFilledRect
	strokeLineFn = vector.StrokeLine
)

// Surface draws chrome onto an ebiten image. The icon is uploaded once per
// source and kept until the source changes or Release is called.
type Surface struct {
	target *ebiten.Image

	iconSrc image.Image
	iconImg *ebiten.Image
}

// SetTarget sets the image the next paint draws onto.
func (s *Surface) SetTarget(img *ebiten.Image) { s.target = img }

func (s *Surface) FillRect(r chrome.Rect, c color.Color) {
	if s.target == nil {
		return
	}
	drawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width int, c color.Color) {
	if s.target == nil {
		return
	}
	strokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *Surface) DrawImage(src image.Image, r chrome.Rect) {
	if s.target == nil || src == nil {
		return
	}
	img := s.icon(src)
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
}

func (s *Surface) icon(src image.Image) *ebiten.Image {
	if s.iconImg != nil && s.iconSrc == src {
		return s.iconImg
	}
	s.releaseIcon()
	s.iconSrc = src
	s.iconImg = ebiten.NewImageFromImage(src)
	return s.iconImg
}

func (s *Surface) releaseIcon() {
	if s.iconImg != nil {
		if DebugMode {
			log.Printf("ebhost: disposing icon image %p", s.iconImg)
		}
		s.iconImg.Deallocate()
		s.iconImg = nil
	}
	s.iconSrc = nil
}

// Release frees the cached icon image.
func (s *Surface) Release() {
	s.releaseIcon()
	s.target = nil
}

func pixelOffset(width float32) float32 {
	if int(math.Round(float64(width)))%2 == 0 {
		return 0
	}
	return 0.5
}

func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float32, col color.Color, aa bool) {
	width = float32(math.Round(float64(width)))
	off := pixelOffset(width)
	x0 = float32(math.Round(float64(x0))) + off
	y0 = float32(math.Round(float64(y0))) + off
	x1 = float32(math.Round(float64(x1))) + off
	y1 = float32(math.Round(float64(y1))) + off
	strokeLineFn(dst, x0, y0, x1, y1, width, col, aa)
}

func drawFilledRect(dst *ebiten.Image, x, y, w, h float32, col color.Color, aa bool) {
	x = float32(math.Round(float64(x)))
	y = float32(math.Round(float64(y)))
	w = float32(math.Round(float64(w)))
	h = float32(math.Round(float64(h)))
	fillRectFn(dst, x, y, w, h, col, aa)
}
