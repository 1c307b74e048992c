package chrome

// Insets is a four-sided pixel inset.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Params holds the layout parameters every region, control and icon size is
// derived from. Values are not validated; negative values produce degenerate
// rectangles rather than failures.
type Params struct {
	CaptionBarHeight int
	BorderWidth      int

	ControlWidth  int
	ControlHeight int

	IconMarginX int
	IconMarginY int

	ContentPadding Insets
}

const (
	defaultCaptionBarHeight = 30
	defaultBorderWidth      = 5
	defaultIconMarginX      = 2
	defaultIconMarginY      = 4
	defaultContentPadding   = 5
)

// DefaultParams returns the stock layout. Controls are square and as tall as
// the caption plus the top border so they cover the whole top strip.
func DefaultParams() Params {
	p := Params{
		CaptionBarHeight: defaultCaptionBarHeight,
		BorderWidth:      defaultBorderWidth,
		IconMarginX:      defaultIconMarginX,
		IconMarginY:      defaultIconMarginY,
		ContentPadding: Insets{
			Left:   defaultContentPadding,
			Top:    defaultContentPadding,
			Right:  defaultContentPadding,
			Bottom: defaultContentPadding,
		},
	}
	p.ControlWidth = p.CaptionBarHeight + p.BorderWidth
	p.ControlHeight = p.CaptionBarHeight + p.BorderWidth
	return p
}

// FormPadding is the inset, relative to the client edge, at which embedded
// content is laid out: the border and caption plus the content padding.
func (p Params) FormPadding() Insets {
	return Insets{
		Left:   p.BorderWidth + p.ContentPadding.Left,
		Top:    p.CaptionBarHeight + p.BorderWidth + p.ContentPadding.Top,
		Right:  p.BorderWidth + p.ContentPadding.Right,
		Bottom: p.BorderWidth + p.ContentPadding.Bottom,
	}
}

// LogoHeight is the icon height that fits the caption between its margins.
func (p Params) LogoHeight() int {
	return p.CaptionBarHeight - 2*p.IconMarginY
}

// MinSize is the smallest client size that still shows both borders, the
// caption and every caption control.
func (p Params) MinSize() Size {
	m := max(2*p.BorderWidth+p.CaptionBarHeight, 1)
	return Size{
		Width:  max(m, p.ControlWidth*int(SlotMinimize)),
		Height: max(m, p.ControlHeight),
	}
}
