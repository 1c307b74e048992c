package x11host

import "gochrome/chrome"

// _NET_WM_MOVERESIZE directions.
const (
	moveResizeSizeTopLeft     = 0
	moveResizeSizeTop         = 1
	moveResizeSizeTopRight    = 2
	moveResizeSizeRight       = 3
	moveResizeSizeBottomRight = 4
	moveResizeSizeBottom      = 5
	moveResizeSizeBottomLeft  = 6
	moveResizeSizeLeft        = 7
	moveResizeMove            = 8
)

// moveResizeDirection maps a hit-test zone to the direction the window
// manager is asked to drag in. ZoneNone has no direction.
func moveResizeDirection(z chrome.Zone) (uint32, bool) {
	switch z {
	case chrome.ZoneCaption:
		return moveResizeMove, true
	case chrome.ZoneTopLeft:
		return moveResizeSizeTopLeft, true
	case chrome.ZoneTop:
		return moveResizeSizeTop, true
	case chrome.ZoneTopRight:
		return moveResizeSizeTopRight, true
	case chrome.ZoneRight:
		return moveResizeSizeRight, true
	case chrome.ZoneBottomRight:
		return moveResizeSizeBottomRight, true
	case chrome.ZoneBottom:
		return moveResizeSizeBottom, true
	case chrome.ZoneBottomLeft:
		return moveResizeSizeBottomLeft, true
	case chrome.ZoneLeft:
		return moveResizeSizeLeft, true
	}
	return 0, false
}
