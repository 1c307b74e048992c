package x11host

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xevent"

	"gochrome/chrome"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	xu, err := xgbutil.NewConn()
	if err != nil {
		t.Skipf("no X server: %v", err)
	}
	t.Cleanup(func() { xu.Conn().Close() })

	h := &Host{
		xu:      xu,
		frame:   chrome.NewFrame(),
		cursors: make(map[uint16]xproto.Cursor),
		glyph:   xcursor.LeftPtr,
	}
	if err := h.internAtoms(); err != nil {
		t.Fatalf("intern atoms: %v", err)
	}
	if err := h.createWindow(RunOptions{Width: 200, Height: 100}); err != nil {
		t.Fatalf("create window: %v", err)
	}
	return h
}

func TestReleaseAfterWindowManagerDestroy(t *testing.T) {
	h := newTestHost(t)
	h.setCursor(xcursor.BottomRightCorner)
	if len(h.cursors) != 1 {
		t.Fatalf("expected one cached cursor, got %d", len(h.cursors))
	}

	h.win.Destroy()
	h.onDestroy(h.xu, xevent.DestroyNotifyEvent{})
	h.release()

	if len(h.cursors) != 0 {
		t.Fatalf("cursors not freed: %d left", len(h.cursors))
	}
	if !h.closed || !h.destroyed {
		t.Fatalf("closed=%v destroyed=%v", h.closed, h.destroyed)
	}
}

func TestCloseThenRelease(t *testing.T) {
	h := newTestHost(t)
	h.setCursor(xcursor.Fleur)

	h.close()
	if !h.destroyed {
		t.Fatalf("close should destroy the window")
	}
	h.release()
	if len(h.cursors) != 0 {
		t.Fatalf("cursors not freed: %d left", len(h.cursors))
	}
}

func TestSyncMinSizeFollowsParams(t *testing.T) {
	h := newTestHost(t)
	defer h.release()

	if h.minSize.sent != h.frame.Params().MinSize() {
		t.Fatalf("initial hints %+v", h.minSize.sent)
	}
	h.frame.SetInvalidator(h.syncMinSize)
	h.frame.SetControlWidth(60)
	if h.minSize.sent.Width != 180 {
		t.Fatalf("hints not refreshed: %+v", h.minSize.sent)
	}
}
