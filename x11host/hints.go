package x11host

import (
	"github.com/BurntSushi/xgbutil/icccm"

	"gochrome/chrome"
)

// minSizeTracker remembers the minimum size last sent to the window manager.
type minSizeTracker struct {
	sent chrome.Size
}

// update returns the minimum size for p and whether it differs from the one
// last sent.
func (t *minSizeTracker) update(p chrome.Params) (chrome.Size, bool) {
	m := p.MinSize()
	if m == t.sent {
		return m, false
	}
	t.sent = m
	return m, true
}

func normalHints(m chrome.Size) *icccm.NormalHints {
	return &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize,
		MinWidth:  uint(m.Width),
		MinHeight: uint(m.Height),
	}
}
