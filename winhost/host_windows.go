// Package winhost shows a chrome.Frame in a Win32 window with no system
// frame. The client area covers the whole window and WM_NCHITTEST answers
// come from the frame, so Windows performs moves, resizes and snapping.
package winhost

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"gochrome/chrome"
	"gochrome/raster"
)

var DebugMode bool

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetModuleHandleW  = kernel32.NewProc("GetModuleHandleW")
	procRegisterClassExW  = user32.NewProc("RegisterClassExW")
	procUnregisterClassW  = user32.NewProc("UnregisterClassW")
	procCreateWindowExW   = user32.NewProc("CreateWindowExW")
	procDefWindowProcW    = user32.NewProc("DefWindowProcW")
	procDestroyWindow     = user32.NewProc("DestroyWindow")
	procShowWindow        = user32.NewProc("ShowWindow")
	procUpdateWindow      = user32.NewProc("UpdateWindow")
	procGetMessageW       = user32.NewProc("GetMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessageW  = user32.NewProc("DispatchMessageW")
	procPostQuitMessage   = user32.NewProc("PostQuitMessage")
	procPostMessageW      = user32.NewProc("PostMessageW")
	procLoadCursorW       = user32.NewProc("LoadCursorW")
	procInvalidateRect    = user32.NewProc("InvalidateRect")
	procBeginPaint        = user32.NewProc("BeginPaint")
	procEndPaint          = user32.NewProc("EndPaint")
	procScreenToClient    = user32.NewProc("ScreenToClient")
	procSetCapture        = user32.NewProc("SetCapture")
	procReleaseCapture    = user32.NewProc("ReleaseCapture")
	procTrackMouseEvent   = user32.NewProc("TrackMouseEvent")
	procSetDIBitsToDevice = gdi32.NewProc("SetDIBitsToDevice")
)

const (
	wsPopup       = 0x80000000
	wsThickFrame  = 0x00040000
	wsMinimizeBox = 0x00020000
	wsSysMenu     = 0x00080000

	cwUseDefault = 0x80000000

	swShow     = 5
	swMinimize = 6

	wmDestroy       = 0x0002
	wmSize          = 0x0005
	wmPaint         = 0x000F
	wmClose         = 0x0010
	wmEraseBkgnd    = 0x0014
	wmGetMinMaxInfo = 0x0024
	wmNCCalcSize    = 0x0083
	wmNCHitTest     = 0x0084
	wmMouseMove     = 0x0200
	wmLButtonDown   = 0x0201
	wmLButtonUp     = 0x0202
	wmMouseLeave    = 0x02A3

	tmeLeave     = 0x00000002
	idcArrow     = 32512
	biRGB        = 0
	dibRGBColors = 0
)

type wndClassExW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

type point struct {
	X, Y int32
}

type msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type paintStruct struct {
	Hdc         uintptr
	FErase      int32
	RcPaint     rect
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}

type minMaxInfo struct {
	PtReserved     point
	PtMaxSize      point
	PtMaxPosition  point
	PtMinTrackSize point
	PtMaxTrackSize point
}

type trackMouseEvent struct {
	CbSize      uint32
	DwFlags     uint32
	HwndTrack   uintptr
	DwHoverTime uint32
}

type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

// RunOptions configures the Win32 window.
type RunOptions struct {
	Title  string
	Width  int
	Height int
}

// Host is the state behind the window procedure. Only one window per process
// is supported; the window procedure has no other way to find its host.
type Host struct {
	hwnd    uintptr
	frame   *chrome.Frame
	surface *raster.Surface
	bgra    []byte

	tracking bool
}

var current *Host

const className = "GoChromeWindow"

// Run creates the window and pumps messages until it is destroyed.
func Run(frame *chrome.Frame, opts RunOptions) error {
	if current != nil {
		return errors.New("winhost: a window is already running")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h := &Host{frame: frame, surface: raster.New(0, 0)}
	current = h
	defer func() { current = nil }()
	defer frame.Release()

	hInstance, _, _ := procGetModuleHandleW.Call(0)
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return err
	}
	cls, unregister, err := registerClass(hInstance)
	if err != nil {
		return err
	}
	defer unregister()

	minSize := frame.Params().MinSize()
	w := uintptr(cwUseDefault)
	hh := uintptr(cwUseDefault)
	if opts.Width > 0 && opts.Height > 0 {
		w = uintptr(max(opts.Width, minSize.Width))
		hh = uintptr(max(opts.Height, minSize.Height))
	}
	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(cls)),
		uintptr(unsafe.Pointer(title)),
		wsPopup|wsThickFrame|wsMinimizeBox|wsSysMenu,
		cwUseDefault, cwUseDefault,
		w, hh,
		0, 0, hInstance, 0,
	)
	if hwnd == 0 {
		return fmt.Errorf("create window: %w", err)
	}
	h.hwnd = hwnd

	frame.SetInvalidator(h.invalidate)
	cmds := frame.Commands()
	prev := cmds.Handle
	cmds.Handle = func(c chrome.Command) {
		if prev != nil {
			prev(c)
		}
		h.execute(c)
	}

	procShowWindow.Call(hwnd, swShow)
	procUpdateWindow.Call(hwnd)

	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 || int32(ret) == -1 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
	return nil
}

var wndProcCallback = windows.NewCallback(wndProc)

// registerClass registers the window class and returns its name along with
// a func that unregisters it.
func registerClass(hInstance uintptr) (*uint16, func(), error) {
	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, nil, err
	}
	var wc wndClassExW
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = wndProcCallback
	wc.HInstance = hInstance
	wc.HCursor, _, _ = procLoadCursorW.Call(0, idcArrow)
	wc.LpszClassName = cls
	if atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return nil, nil, fmt.Errorf("register window class: %w", err)
	}
	unregister := func() {
		if ok, _, err := procUnregisterClassW.Call(uintptr(unsafe.Pointer(cls)), hInstance); ok == 0 {
			log.Printf("winhost: unregister window class: %v", err)
		}
	}
	return cls, unregister, nil
}

func wndProc(hwnd, umsg, wParam, lParam uintptr) uintptr {
	h := current
	if h == nil || (h.hwnd != 0 && h.hwnd != hwnd) {
		ret, _, _ := procDefWindowProcW.Call(hwnd, umsg, wParam, lParam)
		return ret
	}

	switch umsg {
	case wmNCCalcSize:
		if wParam != 0 {
			// The client rectangle is the whole window.
			return 0
		}
	case wmNCHitTest:
		// Let the system answer first so anything it reserves stays intact;
		// only its client answer is refined.
		ret, _, _ := procDefWindowProcW.Call(hwnd, umsg, wParam, lParam)
		if ret != htClient {
			return ret
		}
		p := pointFromLParam(lParam)
		pt := point{X: int32(p.X), Y: int32(p.Y)}
		procScreenToClient.Call(hwnd, uintptr(unsafe.Pointer(&pt)))
		zone := h.frame.OnNonClientHitTest(chrome.Point{X: int(pt.X), Y: int(pt.Y)})
		return hitTestCode(zone)
	case wmGetMinMaxInfo:
		mmi := (*minMaxInfo)(unsafe.Pointer(lParam))
		minSize := h.frame.Params().MinSize()
		mmi.PtMinTrackSize = point{X: int32(minSize.Width), Y: int32(minSize.Height)}
		return 0
	case wmSize:
		size := chrome.Size{Width: int(lParam & 0xffff), Height: int((lParam >> 16) & 0xffff)}
		if h.frame.OnSizeChanged(size) {
			h.surface.Resize(size.Width, size.Height)
			if DebugMode {
				log.Printf("winhost: resized to %dx%d", size.Width, size.Height)
			}
		}
		return 0
	case wmEraseBkgnd:
		return 1
	case wmPaint:
		h.paint()
		return 0
	case wmMouseMove:
		if !h.tracking {
			tme := trackMouseEvent{DwFlags: tmeLeave, HwndTrack: hwnd}
			tme.CbSize = uint32(unsafe.Sizeof(tme))
			procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme)))
			h.tracking = true
		}
		h.frame.OnPointerMove(pointFromLParam(lParam))
		return 0
	case wmMouseLeave:
		h.tracking = false
		h.frame.OnPointerLeave()
		return 0
	case wmLButtonDown:
		if h.frame.OnPointerDown(pointFromLParam(lParam)) {
			procSetCapture.Call(hwnd)
		}
		return 0
	case wmLButtonUp:
		procReleaseCapture.Call()
		h.frame.OnPointerUp(pointFromLParam(lParam))
		return 0
	case wmClose:
		procDestroyWindow.Call(hwnd)
		return 0
	case wmDestroy:
		h.hwnd = 0
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, umsg, wParam, lParam)
	return ret
}

func (h *Host) invalidate() {
	if h.hwnd != 0 {
		procInvalidateRect.Call(h.hwnd, 0, 0)
	}
}

func (h *Host) execute(c chrome.Command) {
	if DebugMode {
		log.Printf("winhost: executing %v", c)
	}
	if h.hwnd == 0 {
		return
	}
	switch c {
	case chrome.CommandMinimize:
		procShowWindow.Call(h.hwnd, swMinimize)
	case chrome.CommandClose:
		procPostMessageW.Call(h.hwnd, wmClose, 0, 0)
	}
}

// paint renders the frame into the raster and copies it to the window.
func (h *Host) paint() {
	var ps paintStruct
	hdc, _, _ := procBeginPaint.Call(h.hwnd, uintptr(unsafe.Pointer(&ps)))
	defer procEndPaint.Call(h.hwnd, uintptr(unsafe.Pointer(&ps)))
	if hdc == 0 {
		return
	}

	h.frame.OnPaint(h.surface)
	b := h.surface.Bounds()
	if b.Empty() {
		return
	}
	h.bgra = toBGRA(h.bgra, h.surface.Image())

	bi := bitmapInfoHeader{
		BiWidth:       int32(b.Dx()),
		BiHeight:      -int32(b.Dy()), // top-down
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: biRGB,
	}
	bi.BiSize = uint32(unsafe.Sizeof(bi))
	procSetDIBitsToDevice.Call(
		hdc,
		0, 0,
		uintptr(b.Dx()), uintptr(b.Dy()),
		0, 0,
		0, uintptr(b.Dy()),
		uintptr(unsafe.Pointer(&h.bgra[0])),
		uintptr(unsafe.Pointer(&bi)),
		dibRGBColors,
	)
}
