package ebhost

import "gochrome/chrome"

// windowRect is a window's screen position and size.
type windowRect struct {
	X, Y, W, H int
}

// dragState is an in-progress move or resize started in a zone. Deltas are
// measured in screen space against the state at press time so moving the
// window under the cursor does not feed back into the delta.
type dragState struct {
	zone        chrome.Zone
	startScreen chrome.Point
	start       windowRect
}

func startDrag(z chrome.Zone, screen chrome.Point, win windowRect) *dragState {
	return &dragState{zone: z, startScreen: screen, start: win}
}

// apply returns the window rectangle for the current screen cursor position.
func (d *dragState) apply(screen chrome.Point, minSize chrome.Size) windowRect {
	dx := screen.X - d.startScreen.X
	dy := screen.Y - d.startScreen.Y
	return dragRect(d.zone, d.start, dx, dy, minSize)
}

// dragRect applies a cursor delta to a window for the given zone. Edges
// opposite the dragged one stay fixed, also when the size is clamped.
func dragRect(z chrome.Zone, r windowRect, dx, dy int, minSize chrome.Size) windowRect {
	if z == chrome.ZoneCaption {
		r.X += dx
		r.Y += dy
		return r
	}

	left, right, top, bottom := false, false, false, false
	switch z {
	case chrome.ZoneTopLeft:
		top, left = true, true
	case chrome.ZoneTopRight:
		top, right = true, true
	case chrome.ZoneBottomLeft:
		bottom, left = true, true
	case chrome.ZoneBottomRight:
		bottom, right = true, true
	case chrome.ZoneTop:
		top = true
	case chrome.ZoneBottom:
		bottom = true
	case chrome.ZoneLeft:
		left = true
	case chrome.ZoneRight:
		right = true
	default:
		return r
	}

	if right {
		r.W = max(r.W+dx, minSize.Width)
	}
	if bottom {
		r.H = max(r.H+dy, minSize.Height)
	}
	if left {
		w := max(r.W-dx, minSize.Width)
		r.X += r.W - w
		r.W = w
	}
	if top {
		h := max(r.H-dy, minSize.Height)
		r.Y += r.H - h
		r.H = h
	}
	return r
}
