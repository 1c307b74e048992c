package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
	"github.com/sqweek/dialog"
	_ "golang.org/x/image/bmp"
)

const maxIconDecoders = 4

func decodeIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	if st, err := f.Stat(); err == nil {
		b := img.Bounds()
		logDebug("loaded %s icon %s: %dx%d, %s", format, path, b.Dx(), b.Dy(), humanize.Bytes(uint64(st.Size())))
	}
	return img, nil
}

// loadIcons decodes paths in parallel and returns the image best suited to a
// caption logo logoHeight pixels tall. Files that fail to decode are logged
// and skipped; it fails only when none decode.
func loadIcons(paths []string, logoHeight int) (image.Image, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	imgs := make([]image.Image, len(paths))
	errs := make([]error, len(paths))

	swg := sizedwaitgroup.New(maxIconDecoders)
	for i, p := range paths {
		swg.Add()
		go func(i int, p string) {
			defer swg.Done()
			imgs[i], errs[i] = decodeIcon(p)
		}(i, p)
	}
	swg.Wait()

	var decoded []image.Image
	for i, img := range imgs {
		if errs[i] != nil {
			logError("%v", errs[i])
			continue
		}
		decoded = append(decoded, img)
	}
	if len(decoded) == 0 {
		return nil, errors.Join(errs...)
	}
	return pickIcon(decoded, logoHeight), nil
}

// pickIcon returns the shortest image at least h tall so it is only ever
// scaled down, or the tallest one when all are shorter.
func pickIcon(imgs []image.Image, h int) image.Image {
	var best, tallest image.Image
	for _, img := range imgs {
		ih := img.Bounds().Dy()
		if tallest == nil || ih > tallest.Bounds().Dy() {
			tallest = img
		}
		if ih >= h && (best == nil || ih < best.Bounds().Dy()) {
			best = img
		}
	}
	if best != nil {
		return best
	}
	return tallest
}

// pickIconFile asks for an icon with the native file dialog. Cancelling
// returns an empty path.
func pickIconFile() (string, error) {
	path, err := dialog.File().
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp").
		Title("Choose caption icon").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("icon dialog: %w", err)
	}
	return path, nil
}
