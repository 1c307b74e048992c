package main

import (
	"fmt"

	"gochrome/chrome"
	"gochrome/ebhost"
)

const (
	backendEbiten = "ebiten"
	backendX11    = "x11"
	backendWin32  = "win32"
)

type windowOptions struct {
	Title  string
	Width  int
	Height int
}

type backendFunc func(*chrome.Frame, windowOptions) error

// backends holds the hosts built for this platform. Platform files add theirs
// in init.
var backends = map[string]backendFunc{
	backendEbiten: runEbiten,
}

var debugHooks = []func(bool){
	func(on bool) { chrome.DebugMode = on },
	func(on bool) { ebhost.DebugMode = on },
}

func setPackageDebug(on bool) {
	for _, fn := range debugHooks {
		fn(on)
	}
}

func runBackend(name string, f *chrome.Frame, opts windowOptions) error {
	run, ok := backends[name]
	if !ok {
		return fmt.Errorf("unsupported backend %q", name)
	}
	logDebug("starting %s backend", name)
	return run(f, opts)
}

func runEbiten(f *chrome.Frame, opts windowOptions) error {
	return ebhost.Run(f, ebhost.RunOptions{Title: opts.Title, Width: opts.Width, Height: opts.Height})
}
