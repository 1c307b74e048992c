package main

import (
	"fmt"

	dark "github.com/thiagokokada/dark-mode-go"

	"gochrome/chrome"
)

var isDarkMode = dark.IsDarkMode

// resolveTheme returns the named theme. "auto" follows the desktop and falls
// back to light when the desktop cannot be asked.
func resolveTheme(name string) (chrome.Theme, error) {
	switch name {
	case themeLight:
		return chrome.LightTheme(), nil
	case themeDark:
		return chrome.DarkTheme(), nil
	case themeAuto, "":
		darkMode, err := isDarkMode()
		if err != nil {
			logDebug("dark mode detection failed: %v", err)
			return chrome.LightTheme(), nil
		}
		if darkMode {
			return chrome.DarkTheme(), nil
		}
		return chrome.LightTheme(), nil
	}
	return chrome.Theme{}, fmt.Errorf("unknown theme %q", name)
}
