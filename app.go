package main

import (
	"image"

	"gochrome/chrome"
)

// buildFrame creates the frame described by s. Control commands are logged
// before the host acts on them.
func buildFrame(s Settings, icon image.Image) (*chrome.Frame, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		chrome.WithIconSource(icon),
		chrome.WithCommandHandler(&chrome.CommandHandler{
			Handle: func(c chrome.Command) { logDebug("caption control: %v", c) },
		}),
	)
	return chrome.NewFrame(opts...), nil
}

// runApp loads the icon, builds the frame and blocks in the chosen backend
// until the window closes. A broken icon only costs the icon.
func runApp(s Settings) error {
	icon, err := loadIcons(s.IconPaths(), s.Params().LogoHeight())
	if err != nil {
		logError("caption icon: %v", err)
	}
	f, err := buildFrame(s, icon)
	if err != nil {
		return err
	}
	return runBackend(s.Backend, f, windowOptions{
		Title:  s.Title,
		Width:  s.Width,
		Height: s.Height,
	})
}
