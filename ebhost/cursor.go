package ebhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gochrome/chrome"
)

// zoneCursor returns the cursor shape that announces what dragging in z does.
func zoneCursor(z chrome.Zone) ebiten.CursorShapeType {
	switch z {
	case chrome.ZoneCaption:
		return ebiten.CursorShapeMove
	case chrome.ZoneLeft, chrome.ZoneRight:
		return ebiten.CursorShapeEWResize
	case chrome.ZoneTop, chrome.ZoneBottom:
		return ebiten.CursorShapeNSResize
	case chrome.ZoneTopLeft, chrome.ZoneBottomRight:
		return ebiten.CursorShapeNWSEResize
	case chrome.ZoneTopRight, chrome.ZoneBottomLeft:
		return ebiten.CursorShapeNESWResize
	}
	return ebiten.CursorShapeDefault
}
