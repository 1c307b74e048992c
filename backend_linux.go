package main

import (
	"gochrome/chrome"
	"gochrome/x11host"
)

func init() {
	backends[backendX11] = runX11
	debugHooks = append(debugHooks, func(on bool) { x11host.DebugMode = on })
}

func runX11(f *chrome.Frame, opts windowOptions) error {
	return x11host.Run(f, x11host.RunOptions{Title: opts.Title, Width: opts.Width, Height: opts.Height})
}
