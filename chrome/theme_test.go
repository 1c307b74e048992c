package chrome

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"#808080", NewColor(128, 128, 128, 255), false},
		{"808080", NewColor(128, 128, 128, 255), false},
		{"#fff", NewColor(255, 255, 255, 255), false},
		{"#1e90ff80", NewColor(30, 144, 255, 128), false},
		{"DodgerBlue", NewColor(30, 144, 255, 255), false},
		{" dimgray ", NewColor(105, 105, 105, 255), false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := NewColor(30, 144, 255, 255).String(); s != "#1e90ff" {
		t.Fatalf("got %s", s)
	}
	if s := NewColor(0, 0, 0, 0).String(); s != "#00000000" {
		t.Fatalf("got %s", s)
	}
}
