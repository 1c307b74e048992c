package x11host

import (
	"image"

	"github.com/BurntSushi/xgbutil/ewmh"
)

// wmIcon packs an image as a _NET_WM_ICON entry of ARGB words.
func wmIcon(src image.Image) ewmh.WmIcon {
	b := src.Bounds()
	data := make([]uint, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			data = append(data, uint(a>>8)<<24|uint(r>>8)<<16|uint(g>>8)<<8|uint(bl>>8))
		}
	}
	return ewmh.WmIcon{Width: uint(b.Dx()), Height: uint(b.Dy()), Data: data}
}
