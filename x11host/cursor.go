package x11host

import (
	"github.com/BurntSushi/xgbutil/xcursor"

	"gochrome/chrome"
)

// zoneGlyph returns the X cursor font glyph shown over z.
func zoneGlyph(z chrome.Zone) uint16 {
	switch z {
	case chrome.ZoneCaption:
		return xcursor.Fleur
	case chrome.ZoneTopLeft:
		return xcursor.TopLeftCorner
	case chrome.ZoneTopRight:
		return xcursor.TopRightCorner
	case chrome.ZoneBottomLeft:
		return xcursor.BottomLeftCorner
	case chrome.ZoneBottomRight:
		return xcursor.BottomRightCorner
	case chrome.ZoneTop:
		return xcursor.TopSide
	case chrome.ZoneBottom:
		return xcursor.BottomSide
	case chrome.ZoneLeft:
		return xcursor.LeftSide
	case chrome.ZoneRight:
		return xcursor.RightSide
	}
	return xcursor.LeftPtr
}
