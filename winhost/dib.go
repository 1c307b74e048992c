package winhost

import "image"

// toBGRA copies img into dst in the byte order of a 32-bit top-down DIB.
// dst is grown as needed and returned.
func toBGRA(dst []byte, img *image.RGBA) []byte {
	b := img.Bounds()
	n := b.Dx() * b.Dy() * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx()*4; x += 4 {
			dst[i+0] = row[x+2]
			dst[i+1] = row[x+1]
			dst[i+2] = row[x+0]
			dst[i+3] = row[x+3]
			i += 4
		}
	}
	return dst
}
