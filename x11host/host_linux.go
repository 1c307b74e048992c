// Package x11host shows a chrome.Frame in an undecorated X11 window. Moves
// and resizes are handed to the window manager with _NET_WM_MOVERESIZE, so
// snapping and edge constraints behave as they do for decorated windows.
package x11host

import (
	"fmt"
	"log"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
	"golang.org/x/time/rate"

	"gochrome/chrome"
	"gochrome/raster"
)

var DebugMode bool

var motionLogLimiter = rate.NewLimiter(rate.Every(250*time.Millisecond), 1)

// RunOptions configures the X11 window.
type RunOptions struct {
	Title  string
	Width  int
	Height int
}

type atoms struct {
	protocols   xproto.Atom
	deleteWin   xproto.Atom
	changeState xproto.Atom
	moveResize  xproto.Atom
}

// Host owns the X connection, the window and its backing raster.
type Host struct {
	xu    *xgbutil.XUtil
	win   *xwindow.Window
	frame *chrome.Frame

	surface *raster.Surface
	atoms   atoms
	cursors map[uint16]xproto.Cursor
	glyph   uint16

	minSize minSizeTracker

	dirty     bool
	closed    bool
	destroyed bool
}

// Run connects to the display, opens the window and blocks in the X event
// loop until the window is closed.
func Run(frame *chrome.Frame, opts RunOptions) error {
	defer frame.Release()

	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer xu.Conn().Close()

	h := &Host{
		xu:      xu,
		frame:   frame,
		cursors: make(map[uint16]xproto.Cursor),
		glyph:   xcursor.LeftPtr,
	}
	defer h.release()
	if err := h.internAtoms(); err != nil {
		return err
	}
	if err := h.createWindow(opts); err != nil {
		return err
	}

	frame.SetInvalidator(func() {
		h.dirty = true
		h.syncMinSize()
	})
	cmds := frame.Commands()
	prev := cmds.Handle
	cmds.Handle = func(c chrome.Command) {
		if prev != nil {
			prev(c)
		}
		h.execute(c)
	}

	h.win.Map()
	xevent.Main(xu)
	return nil
}

func (h *Host) internAtoms() error {
	names := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &h.atoms.protocols},
		{"WM_DELETE_WINDOW", &h.atoms.deleteWin},
		{"WM_CHANGE_STATE", &h.atoms.changeState},
		{"_NET_WM_MOVERESIZE", &h.atoms.moveResize},
	}
	for _, n := range names {
		reply, err := xproto.InternAtom(h.xu.Conn(), false, uint16(len(n.name)), n.name).Reply()
		if err != nil {
			return fmt.Errorf("failed to intern %s: %w", n.name, err)
		}
		*n.dst = reply.Atom
	}
	return nil
}

func (h *Host) createWindow(opts RunOptions) error {
	minSize := h.frame.Params().MinSize()
	w := max(opts.Width, minSize.Width)
	hh := max(opts.Height, minSize.Height)

	win, err := xwindow.Generate(h.xu)
	if err != nil {
		return fmt.Errorf("generate window id: %w", err)
	}
	err = win.CreateChecked(h.xu.RootWin(), 0, 0, w, hh, 0)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	h.win = win

	err = win.Listen(
		xproto.EventMaskExposure,
		xproto.EventMaskStructureNotify,
		xproto.EventMaskButtonPress,
		xproto.EventMaskButtonRelease,
		xproto.EventMaskPointerMotion,
		xproto.EventMaskLeaveWindow,
	)
	if err != nil {
		return fmt.Errorf("select window events: %w", err)
	}

	// Drop the window manager's frame; the chrome draws its own.
	err = motif.WmHintsSet(h.xu, win.Id, &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	})
	if err != nil {
		log.Printf("x11host: motif hints: %v", err)
	}
	if err := icccm.WmProtocolsSet(h.xu, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		log.Printf("x11host: WM_PROTOCOLS: %v", err)
	}
	h.syncMinSize()
	if opts.Title != "" {
		if err := ewmh.WmNameSet(h.xu, win.Id, opts.Title); err != nil {
			log.Printf("x11host: _NET_WM_NAME: %v", err)
		}
		if err := icccm.WmNameSet(h.xu, win.Id, opts.Title); err != nil {
			log.Printf("x11host: WM_NAME: %v", err)
		}
	}
	if src := h.frame.IconSource(); src != nil {
		if err := ewmh.WmIconSet(h.xu, win.Id, []ewmh.WmIcon{wmIcon(src)}); err != nil {
			log.Printf("x11host: _NET_WM_ICON: %v", err)
		}
	}

	h.surface = raster.New(w, hh)
	h.frame.OnSizeChanged(chrome.Size{Width: w, Height: hh})
	h.dirty = true

	xevent.ExposeFun(h.onExpose).Connect(h.xu, win.Id)
	xevent.ConfigureNotifyFun(h.onConfigure).Connect(h.xu, win.Id)
	xevent.ButtonPressFun(h.onButtonPress).Connect(h.xu, win.Id)
	xevent.ButtonReleaseFun(h.onButtonRelease).Connect(h.xu, win.Id)
	xevent.MotionNotifyFun(h.onMotion).Connect(h.xu, win.Id)
	xevent.LeaveNotifyFun(h.onLeave).Connect(h.xu, win.Id)
	xevent.ClientMessageFun(h.onClientMessage).Connect(h.xu, win.Id)
	xevent.DestroyNotifyFun(h.onDestroy).Connect(h.xu, win.Id)
	return nil
}

func (h *Host) onExpose(xu *xgbutil.XUtil, ev xevent.ExposeEvent) {
	if ev.Count == 0 {
		h.dirty = true
		h.flush()
	}
}

func (h *Host) onConfigure(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
	size := chrome.Size{Width: int(ev.Width), Height: int(ev.Height)}
	if h.frame.OnSizeChanged(size) {
		h.surface.Resize(size.Width, size.Height)
		if DebugMode {
			log.Printf("x11host: resized to %dx%d", size.Width, size.Height)
		}
	}
	h.flush()
}

func (h *Host) onButtonPress(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
	if ev.Detail != xproto.ButtonIndex1 {
		return
	}
	pt := chrome.Point{X: int(ev.EventX), Y: int(ev.EventY)}
	if h.frame.OnPointerDown(pt) {
		h.flush()
		return
	}
	zone := h.frame.OnNonClientHitTest(pt)
	dir, ok := moveResizeDirection(zone)
	if !ok {
		return
	}
	if err := h.beginMoveResize(int(ev.RootX), int(ev.RootY), dir, ev.Time); err != nil {
		log.Printf("x11host: %v drag: %v", zone, err)
	}
}

func (h *Host) onButtonRelease(xu *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
	if ev.Detail != xproto.ButtonIndex1 {
		return
	}
	h.frame.OnPointerUp(chrome.Point{X: int(ev.EventX), Y: int(ev.EventY)})
	h.flush()
}

func (h *Host) onMotion(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
	pt := chrome.Point{X: int(ev.EventX), Y: int(ev.EventY)}
	h.frame.OnPointerMove(pt)
	zone := h.frame.OnNonClientHitTest(pt)
	if DebugMode && motionLogLimiter.Allow() {
		log.Printf("x11host: pointer %+v over %v", pt, zone)
	}
	h.setCursor(zoneGlyph(zone))
	h.flush()
}

func (h *Host) onLeave(xu *xgbutil.XUtil, ev xevent.LeaveNotifyEvent) {
	h.frame.OnPointerLeave()
	h.flush()
}

func (h *Host) onClientMessage(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
	if ev.Type != h.atoms.protocols || ev.Format != 32 {
		return
	}
	if xproto.Atom(ev.Data.Data32[0]) == h.atoms.deleteWin {
		h.close()
	}
}

func (h *Host) onDestroy(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
	h.closed = true
	h.destroyed = true
	xevent.Quit(xu)
}

// syncMinSize sends WM_NORMAL_HINTS when the frame's minimum size changed.
func (h *Host) syncMinSize() {
	if h.win == nil || h.destroyed {
		return
	}
	m, changed := h.minSize.update(h.frame.Params())
	if !changed {
		return
	}
	if err := icccm.WmNormalHintsSet(h.xu, h.win.Id, normalHints(m)); err != nil {
		log.Printf("x11host: WM_NORMAL_HINTS: %v", err)
	}
}

// beginMoveResize hands the drag to the window manager. The implicit grab
// from the button press must be released first or the manager cannot take
// the pointer.
func (h *Host) beginMoveResize(rootX, rootY int, dir uint32, t xproto.Timestamp) error {
	xproto.UngrabPointer(h.xu.Conn(), t)

	const (
		button           = 1
		sourceIndication = 1 // normal application
	)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: h.win.Id,
		Type:   h.atoms.moveResize,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(rootX), uint32(rootY), dir, button, sourceIndication,
		}),
	}
	return xproto.SendEventChecked(
		h.xu.Conn(),
		false,
		h.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

func (h *Host) execute(c chrome.Command) {
	if DebugMode {
		log.Printf("x11host: executing %v", c)
	}
	switch c {
	case chrome.CommandMinimize:
		if err := h.iconify(); err != nil {
			log.Printf("x11host: minimize: %v", err)
		}
	case chrome.CommandClose:
		h.close()
	}
}

// iconify asks the window manager to minimize the window via WM_CHANGE_STATE.
func (h *Host) iconify() error {
	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: h.win.Id,
		Type:   h.atoms.changeState,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}
	return xproto.SendEvent(
		h.xu.Conn(),
		false,
		h.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

func (h *Host) close() {
	if h.closed {
		return
	}
	h.closed = true
	h.destroyWindow()
	xevent.Quit(h.xu)
}

func (h *Host) destroyWindow() {
	if h.win == nil || h.destroyed {
		return
	}
	h.destroyed = true
	h.win.Destroy()
}

// release frees the cursors and the window, however the event loop ended.
func (h *Host) release() {
	for glyph, c := range h.cursors {
		xproto.FreeCursor(h.xu.Conn(), c)
		delete(h.cursors, glyph)
	}
	h.destroyWindow()
}

func (h *Host) setCursor(glyph uint16) {
	if glyph == h.glyph {
		return
	}
	c, ok := h.cursors[glyph]
	if !ok {
		var err error
		c, err = xcursor.CreateCursor(h.xu, glyph)
		if err != nil {
			log.Printf("x11host: create cursor %d: %v", glyph, err)
			return
		}
		h.cursors[glyph] = c
	}
	xproto.ChangeWindowAttributes(h.xu.Conn(), h.win.Id, xproto.CwCursor, []uint32{uint32(c)})
	h.glyph = glyph
}

// flush repaints the window if the frame asked for it since the last flush.
func (h *Host) flush() {
	if !h.dirty || h.closed {
		return
	}
	h.dirty = false
	h.frame.OnPaint(h.surface)
	if h.surface.Bounds().Empty() {
		return
	}
	ximg := xgraphics.NewConvert(h.xu, h.surface.Image())
	defer ximg.Destroy()
	if err := ximg.XSurfaceSet(h.win.Id); err != nil {
		log.Printf("x11host: paint: %v", err)
		return
	}
	ximg.XDraw()
	ximg.XPaint(h.win.Id)
}
