package main

import (
	"errors"
	"testing"

	"gochrome/chrome"
)

func TestResolveTheme(t *testing.T) {
	orig := isDarkMode
	defer func() { isDarkMode = orig }()

	tests := []struct {
		name    string
		theme   string
		dark    bool
		darkErr error
		want    chrome.Theme
	}{
		{"light", themeLight, true, nil, chrome.LightTheme()},
		{"dark", themeDark, false, nil, chrome.DarkTheme()},
		{"auto dark desktop", themeAuto, true, nil, chrome.DarkTheme()},
		{"auto light desktop", themeAuto, false, nil, chrome.LightTheme()},
		{"auto detection fails", themeAuto, true, errors.New("no desktop"), chrome.LightTheme()},
	}
	for _, tt := range tests {
		isDarkMode = func() (bool, error) { return tt.dark, tt.darkErr }
		got, err := resolveTheme(tt.theme)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %+v want %+v", tt.name, got, tt.want)
		}
	}

	if _, err := resolveTheme("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
