// Package ebhost runs a chrome.Frame in an undecorated ebiten window. Ebiten
// exposes no native hit test, so the host plays the window manager's part:
// it asks the frame which zone is under the cursor and moves or resizes the
// window accordingly.
package ebhost

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gochrome/chrome"
)

// Host implements ebiten.Game around a frame.
type Host struct {
	frame   *chrome.Frame
	surface Surface

	dirty   bool
	closing bool

	drag   *dragState
	hover  chrome.Zone
	cursor ebiten.CursorShapeType

	minSize   chrome.Size
	setLimits func(chrome.Size)
}

// New wraps frame and hooks its repaint requests and commands. Commands still
// reach any callback installed on the frame before New.
func New(frame *chrome.Frame) *Host {
	h := &Host{frame: frame, dirty: true, setLimits: setWindowMinSize}
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
	return h
}

// RunOptions configures the ebiten window.
type RunOptions struct {
	Title  string
	Width  int
	Height int
}

// Run opens the window and blocks until it is closed.
func Run(frame *chrome.Frame, opts RunOptions) error {
	h := New(frame)
	defer h.Release()

	if opts.Title != "" {
		ebiten.SetWindowTitle(opts.Title)
	}
	if opts.Width > 0 && opts.Height > 0 {
		ebiten.SetWindowSize(opts.Width, opts.Height)
	}
	if src := frame.IconSource(); src != nil {
		ebiten.SetWindowIcon([]image.Image{src})
	}
	h.syncMinSize()
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	return ebiten.RunGame(h)
}

// Release frees the host's GPU resources and the frame's.
func (h *Host) Release() {
	h.surface.Release()
	h.frame.Release()
}

// syncMinSize re-applies the window size limits when the frame's minimum
// size has changed since they were last set.
func (h *Host) syncMinSize() {
	m := h.frame.Params().MinSize()
	if m == h.minSize {
		return
	}
	h.minSize = m
	if DebugMode {
		log.Printf("ebhost: minimum window size %dx%d", m.Width, m.Height)
	}
	if h.setLimits != nil {
		h.setLimits(m)
	}
}

func setWindowMinSize(m chrome.Size) {
	ebiten.SetWindowSizeLimits(m.Width, m.Height, -1, -1)
}

func (h *Host) execute(c chrome.Command) {
	if DebugMode {
		log.Printf("ebhost: executing %v", c)
	}
	switch c {
	case chrome.CommandMinimize:
		h.drag = nil
		ebiten.MinimizeWindow()
	case chrome.CommandClose:
		h.closing = true
	}
}

// Update processes pointer input. Presses on a control go to the frame; any
// other press is hit tested and starts a move or resize for the zone.
func (h *Host) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.closing = true
	}
	if h.closing {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	pt := chrome.Point{X: cx, Y: cy}

	if h.drag != nil {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			h.updateDrag(pt)
			return nil
		}
		if DebugMode {
			log.Printf("ebhost: %v drag done", h.drag.zone)
		}
		h.drag = nil
	}

	size := h.frame.Size()
	if !(chrome.Rect{W: size.Width, H: size.Height}).Contains(pt) {
		h.frame.OnPointerLeave()
		h.hover = chrome.ZoneNone
		h.setCursor(ebiten.CursorShapeDefault)
		return nil
	}

	h.frame.OnPointerMove(pt)
	zone := h.frame.OnNonClientHitTest(pt)
	if zone != h.hover {
		if DebugMode && hoverLogLimiter.Allow() {
			log.Printf("ebhost: cursor %+v over %v", pt, zone)
		}
		h.hover = zone
	}
	h.setCursor(zoneCursor(zone))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !h.frame.OnPointerDown(pt) && zone != chrome.ZoneNone {
			h.drag = startDrag(zone, screenPoint(pt), currentWindow())
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.frame.OnPointerUp(pt)
	}

	if h.closing {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) updateDrag(pt chrome.Point) {
	cur := currentWindow()
	next := h.drag.apply(screenPoint(pt), h.frame.Params().MinSize())
	if next.X != cur.X || next.Y != cur.Y {
		ebiten.SetWindowPosition(next.X, next.Y)
	}
	if next.W != cur.W || next.H != cur.H {
		ebiten.SetWindowSize(next.W, next.H)
	}
}

func (h *Host) setCursor(c ebiten.CursorShapeType) {
	if h.cursor != c {
		ebiten.SetCursorShape(c)
		h.cursor = c
	}
}

// Draw paints the chrome when the frame asked for a repaint. The screen is
// not cleared between frames, so skipped frames keep the last image; a
// repaint starts from a cleared screen so translucent fills do not stack.
func (h *Host) Draw(screen *ebiten.Image) {
	if !h.dirty {
		return
	}
	screen.Clear()
	h.surface.SetTarget(screen)
	h.frame.OnPaint(&h.surface)
	h.dirty = false
}

// Layout reports the window size to the frame and renders at that size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	if h.frame.OnSizeChanged(chrome.Size{Width: outsideWidth, Height: outsideHeight}) {
		h.dirty = true
	}
	return outsideWidth, outsideHeight
}

func currentWindow() windowRect {
	x, y := ebiten.WindowPosition()
	w, hh := ebiten.WindowSize()
	return windowRect{X: x, Y: y, W: w, H: hh}
}

// screenPoint converts a window-relative cursor position to screen space.
func screenPoint(pt chrome.Point) chrome.Point {
	x, y := ebiten.WindowPosition()
	return chrome.Point{X: x + pt.X, Y: y + pt.Y}
}
