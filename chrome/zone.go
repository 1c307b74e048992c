package chrome

// Zone is the semantic classification of a point in the window, answered to
// the host window manager in place of the native frame's own hit test.
type Zone int

const (
	// ZoneNone leaves the point to default client handling.
	ZoneNone Zone = iota
	ZoneCaption
	ZoneTopLeft
	ZoneTopRight
	ZoneBottomLeft
	ZoneBottomRight
	ZoneTop
	ZoneLeft
	ZoneRight
	ZoneBottom
)

var zoneNames = [...]string{
	ZoneNone:        "none",
	ZoneCaption:     "caption",
	ZoneTopLeft:     "top-left",
	ZoneTopRight:    "top-right",
	ZoneBottomLeft:  "bottom-left",
	ZoneBottomRight: "bottom-right",
	ZoneTop:         "top",
	ZoneLeft:        "left",
	ZoneRight:       "right",
	ZoneBottom:      "bottom",
}

func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneNames) {
		return "unknown"
	}
	return zoneNames[z]
}

// IsMove reports whether dragging in z moves the window.
func (z Zone) IsMove() bool { return z == ZoneCaption }

// IsResize reports whether dragging in z resizes the window.
func (z Zone) IsResize() bool { return z >= ZoneTopLeft && z <= ZoneBottom }

// Classify maps a client point to a zone. The first matching rectangle wins:
// caption, then the corners, then the edges. Corners must be tested before
// the edges they are embedded in.
func Classify(pt Point, r Regions) Zone {
	switch {
	case r.CaptionBar.Contains(pt):
		return ZoneCaption

	case r.CornerTopLeft.Contains(pt):
		return ZoneTopLeft
	case r.CornerTopRight.Contains(pt):
		return ZoneTopRight
	case r.CornerBottomLeft.Contains(pt):
		return ZoneBottomLeft
	case r.CornerBottomRight.Contains(pt):
		return ZoneBottomRight

	case r.BorderTop.Contains(pt):
		return ZoneTop
	case r.BorderLeft.Contains(pt):
		return ZoneLeft
	case r.BorderRight.Contains(pt):
		return ZoneRight
	case r.BorderBottom.Contains(pt):
		return ZoneBottom
	}
	return ZoneNone
}

// ClassifyAt recomputes the regions for the given size and parameters and
// classifies pt against them.
func ClassifyAt(pt Point, size Size, p Params) Zone {
	return Classify(pt, ComputeRegions(size, p))
}
