package chrome

import (
	"image"
	"image/color"
)

// Surface is the drawing capability a host hands to the renderer on every
// paint. Rectangles passed to it are never negative in size.
type Surface interface {
	FillRect(r Rect, c color.Color)
	DrawImage(img image.Image, dst Rect)
	StrokeLine(x0, y0, x1, y1, width int, c color.Color)
}

// paintState is everything a paint reads. It is assembled from current
// values on every paint and never stored.
type paintState struct {
	size     Size
	params   Params
	theme    Theme
	icon     *Icon
	controls []*Control
}

// paint fills the frame, icon, content and controls in that order so later
// fills are not covered by earlier ones. It only reads its input.
func paint(s Surface, st paintState) {
	if s == nil {
		return
	}
	r := ComputeRegions(st.size, st.params)

	for _, b := range r.Borders() {
		fill(s, b, st.theme.WindowBackColor)
	}
	fill(s, r.CaptionBar, st.theme.WindowBackColor)

	if st.icon != nil {
		ir := st.icon.Rect(st.params).Clamp()
		if !ir.Empty() {
			s.DrawImage(st.icon.Source, ir)
		}
	}

	fill(s, r.ContentArea, st.theme.ContentBackColor)

	for _, c := range st.controls {
		paintControl(s, c, st.theme)
	}
}

func fill(s Surface, r Rect, c color.Color) {
	r = r.Clamp()
	if r.Empty() {
		return
	}
	s.FillRect(r, c)
}

func paintControl(s Surface, c *Control, th Theme) {
	b := c.Bounds.Clamp()
	if b.Empty() {
		return
	}
	bg := th.WindowBackColor
	if c.Hovered || c.Pressed {
		bg = th.ControlHoverColor
	}
	s.FillRect(b, bg)

	pad := min(b.W, b.H) / 3
	lw := max(1, min(b.W, b.H)/16)
	x0, x1 := b.X+pad, b.X+b.W-pad
	y0, y1 := b.Y+pad, b.Y+b.H-pad
	if x1 <= x0 || y1 <= y0 {
		return
	}
	switch c.Kind {
	case ControlMinimize:
		s.StrokeLine(x0, y1, x1, y1, lw, th.GlyphColor)
	case ControlClose:
		s.StrokeLine(x0, y0, x1, y1, lw, th.GlyphColor)
		s.StrokeLine(x1, y0, x0, y1, lw, th.GlyphColor)
	}
}
