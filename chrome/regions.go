package chrome

import "image"

// Point is a position in client coordinates, origin top-left.
type Point struct {
	X, Y int
}

// Size is a client area size in pixels.
type Size struct {
	Width, Height int
}

// Rect is an origin/size rectangle. W and H may be zero or negative when the
// window is smaller than its chrome; such rectangles contain no points.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp returns r with negative dimensions clamped to zero.
func (r Rect) Clamp() Rect {
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Image converts r to an image.Rectangle after clamping.
func (r Rect) Image() image.Rectangle {
	c := r.Clamp()
	return image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
}

// Area returns the clamped pixel area of r.
func (r Rect) Area() int {
	c := r.Clamp()
	return c.W * c.H
}

// Regions is the named decomposition of a client area. Corners overlap the
// edges they sit on.
type Regions struct {
	BorderTop    Rect
	BorderLeft   Rect
	BorderRight  Rect
	BorderBottom Rect

	CornerTopLeft     Rect
	CornerTopRight    Rect
	CornerBottomLeft  Rect
	CornerBottomRight Rect

	CaptionBar  Rect
	ContentArea Rect
}

// ComputeRegions derives all named rectangles from the client size and the
// layout parameters. It has no side effects and never fails; sizes smaller
// than the chrome yield degenerate rectangles.
func ComputeRegions(size Size, p Params) Regions {
	w, h := size.Width, size.Height
	bw := p.BorderWidth
	ch := p.CaptionBarHeight

	return Regions{
		BorderTop:    Rect{X: 0, Y: 0, W: w, H: bw},
		BorderLeft:   Rect{X: 0, Y: 0, W: bw, H: h},
		BorderRight:  Rect{X: w - bw, Y: 0, W: bw, H: h},
		BorderBottom: Rect{X: 0, Y: h - bw, W: w, H: bw},

		CornerTopLeft:     Rect{X: 0, Y: 0, W: bw, H: bw},
		CornerTopRight:    Rect{X: w - bw, Y: 0, W: bw, H: bw},
		CornerBottomLeft:  Rect{X: 0, Y: h - bw, W: bw, H: bw},
		CornerBottomRight: Rect{X: w - bw, Y: h - bw, W: bw, H: bw},

		CaptionBar:  Rect{X: bw, Y: bw, W: w - 2*bw, H: ch},
		ContentArea: Rect{X: bw, Y: ch + bw, W: w - 2*bw, H: h - ch - 2*bw},
	}
}

// Borders returns the four edge rectangles in paint order.
func (r Regions) Borders() []Rect {
	return []Rect{r.BorderTop, r.BorderLeft, r.BorderRight, r.BorderBottom}
}

// ContentBounds returns the box embedded content is laid out in: the client
// area inset by the form padding.
func ContentBounds(size Size, p Params) Rect {
	pad := p.FormPadding()
	return Rect{
		X: pad.Left,
		Y: pad.Top,
		W: size.Width - pad.Left - pad.Right,
		H: size.Height - pad.Top - pad.Bottom,
	}
}
