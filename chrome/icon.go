package chrome

import "image"

// Icon is the caption icon with its drawn size precomputed, so painting never
// derives dimensions from the source.
type Icon struct {
	Source image.Image
	Width  int
	Height int
}

// newIcon sizes src to fit the caption between its vertical margins while
// preserving the source aspect ratio. It returns nil for a missing or
// zero-height source.
func newIcon(src image.Image, p Params) *Icon {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dy() <= 0 {
		return nil
	}
	h := p.LogoHeight()
	w := int(float32(b.Dx()) / float32(b.Dy()) * float32(h))
	return &Icon{Source: src, Width: w, Height: h}
}

// Rect is where the icon is drawn for the given parameters.
func (ic *Icon) Rect(p Params) Rect {
	if ic == nil {
		return Rect{}
	}
	return Rect{X: p.IconMarginX, Y: p.IconMarginY, W: ic.Width, H: ic.Height}
}
