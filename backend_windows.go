package main

import (
	"gochrome/chrome"
	"gochrome/winhost"
)

func init() {
	backends[backendWin32] = runWin32
	debugHooks = append(debugHooks, func(on bool) { winhost.DebugMode = on })
}

func runWin32(f *chrome.Frame, opts windowOptions) error {
	return winhost.Run(f, winhost.RunOptions{Title: opts.Title, Width: opts.Width, Height: opts.Height})
}
