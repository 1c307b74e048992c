package winhost

import "gochrome/chrome"

// WM_NCHITTEST results.
const (
	htClient      = 1
	htCaption     = 2
	htLeft        = 10
	htRight       = 11
	htTop         = 12
	htTopLeft     = 13
	htTopRight    = 14
	htBottom      = 15
	htBottomLeft  = 16
	htBottomRight = 17
)

// hitTestCode translates a zone into the code Windows uses to decide between
// client input, a move and a resize on each edge.
func hitTestCode(z chrome.Zone) uintptr {
	switch z {
	case chrome.ZoneCaption:
		return htCaption
	case chrome.ZoneTopLeft:
		return htTopLeft
	case chrome.ZoneTopRight:
		return htTopRight
	case chrome.ZoneBottomLeft:
		return htBottomLeft
	case chrome.ZoneBottomRight:
		return htBottomRight
	case chrome.ZoneTop:
		return htTop
	case chrome.ZoneLeft:
		return htLeft
	case chrome.ZoneRight:
		return htRight
	case chrome.ZoneBottom:
		return htBottom
	}
	return htClient
}

// pointFromLParam unpacks the signed 16-bit coordinates of a mouse message.
func pointFromLParam(lp uintptr) chrome.Point {
	return chrome.Point{
		X: int(int16(lp & 0xffff)),
		Y: int(int16((lp >> 16) & 0xffff)),
	}
}
