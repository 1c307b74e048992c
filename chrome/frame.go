package chrome

import (
	"image"
	"log"
)

// Frame is a custom-drawn window chrome: a colored border, a caption strip
// with an icon and minimize/close controls, and a padded content area.
//
// A host drives it through three hooks: OnSizeChanged when the client area
// changes, OnPaint when the window needs drawing and OnNonClientHitTest when
// its window manager asks what lies under the cursor. The answer to the last
// one is what makes the host perform native move and resize.
//
// All methods must be called from the host's UI thread.
type Frame struct {
	params Params
	theme  Theme

	iconSrc image.Image
	icon    *Icon

	size     Size
	controls ControlSet

	handler    *CommandHandler
	invalidate func()
}

// Option configures a Frame at construction time.
type Option func(*Frame)

// NewFrame returns a frame with the default parameters and light theme,
// modified by opts, with its controls already laid out.
func NewFrame(opts ...Option) *Frame {
	f := &Frame{
		params:  DefaultParams(),
		theme:   LightTheme(),
		handler: newCommandHandler(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.icon = newIcon(f.iconSrc, f.params)
	f.controls.Update(f.size.Width, f.params)
	return f
}

func WithParams(p Params) Option { return func(f *Frame) { f.params = p } }

func WithTheme(th Theme) Option { return func(f *Frame) { f.theme = th } }

func WithClientSize(s Size) Option { return func(f *Frame) { f.size = s } }

func WithIconSource(img image.Image) Option { return func(f *Frame) { f.iconSrc = img } }

func WithWindowBackColor(c Color) Option { return func(f *Frame) { f.theme.WindowBackColor = c } }

func WithContentBackColor(c Color) Option { return func(f *Frame) { f.theme.ContentBackColor = c } }

func WithControlHoverColor(c Color) Option { return func(f *Frame) { f.theme.ControlHoverColor = c } }

// WithCommandHandler replaces the default buffered command handler.
func WithCommandHandler(h *CommandHandler) Option {
	return func(f *Frame) {
		if h != nil {
			f.handler = h
		}
	}
}

// WithInvalidator sets the callback used to request a repaint.
func WithInvalidator(fn func()) Option { return func(f *Frame) { f.invalidate = fn } }

// SetInvalidator sets the callback used to request a repaint from the host.
func (f *Frame) SetInvalidator(fn func()) { f.invalidate = fn }

// Invalidate asks the host for a repaint.
func (f *Frame) Invalidate() {
	if f.invalidate != nil {
		f.invalidate()
	}
}

// Commands returns the handler minimize and close requests are emitted on.
func (f *Frame) Commands() *CommandHandler { return f.handler }

func (f *Frame) Params() Params { return f.params }

func (f *Frame) Theme() Theme { return f.theme }

func (f *Frame) Size() Size { return f.size }

func (f *Frame) Icon() *Icon { return f.icon }

func (f *Frame) IconSource() image.Image { return f.iconSrc }

// Regions computes the named rectangles for the current size and parameters.
func (f *Frame) Regions() Regions { return ComputeRegions(f.size, f.params) }

// ContentBounds is the padded box embedded content is laid out in.
func (f *Frame) ContentBounds() Rect { return ContentBounds(f.size, f.params) }

// Controls returns the caption controls.
func (f *Frame) Controls() *ControlSet { return &f.controls }

// UpdateControls creates the caption controls or, when they already exist,
// repositions them for the current size.
func (f *Frame) UpdateControls() {
	f.controls.Update(f.size.Width, f.params)
}

// InitLayout is called by embedders once their own setup is done.
func (f *Frame) InitLayout() {
	f.UpdateControls()
	f.Invalidate()
}

// layoutChanged repositions the controls and requests a repaint.
func (f *Frame) layoutChanged() {
	f.controls.Update(f.size.Width, f.params)
	if DebugMode {
		log.Printf("chrome: layout %+v size %dx%d", f.params, f.size.Width, f.size.Height)
	}
	f.Invalidate()
}

// resizeIcon recomputes the drawn icon size from the current source and
// parameters.
func (f *Frame) resizeIcon() {
	f.icon = newIcon(f.iconSrc, f.params)
}

// SetParams replaces all layout parameters at once.
func (f *Frame) SetParams(p Params) {
	f.params = p
	f.resizeIcon()
	f.layoutChanged()
}

func (f *Frame) SetCaptionBarHeight(h int) {
	f.params.CaptionBarHeight = h
	f.resizeIcon()
	f.layoutChanged()
}

func (f *Frame) SetBorderWidth(w int) {
	f.params.BorderWidth = w
	f.layoutChanged()
}

func (f *Frame) SetControlWidth(w int) {
	f.params.ControlWidth = w
	f.layoutChanged()
}

func (f *Frame) SetControlHeight(h int) {
	f.params.ControlHeight = h
	f.layoutChanged()
}

// SetControlSize sets both control dimensions with a single re-layout.
func (f *Frame) SetControlSize(w, h int) {
	f.params.ControlWidth = w
	f.params.ControlHeight = h
	f.layoutChanged()
}

func (f *Frame) SetIconMarginX(x int) {
	f.params.IconMarginX = x
	f.layoutChanged()
}

func (f *Frame) SetIconMarginY(y int) {
	f.params.IconMarginY = y
	f.resizeIcon()
	f.layoutChanged()
}

func (f *Frame) SetIconMargin(x, y int) {
	f.params.IconMarginX = x
	f.params.IconMarginY = y
	f.resizeIcon()
	f.layoutChanged()
}

func (f *Frame) SetContentPadding(in Insets) {
	f.params.ContentPadding = in
	f.layoutChanged()
}

// SetIconSource sets the caption icon. A nil image removes it.
func (f *Frame) SetIconSource(img image.Image) {
	f.iconSrc = img
	f.resizeIcon()
	f.Invalidate()
}

func (f *Frame) SetTheme(th Theme) {
	f.theme = th
	f.Invalidate()
}

func (f *Frame) SetWindowBackColor(c Color) {
	f.theme.WindowBackColor = c
	f.Invalidate()
}

func (f *Frame) SetContentBackColor(c Color) {
	f.theme.ContentBackColor = c
	f.Invalidate()
}

func (f *Frame) SetControlHoverColor(c Color) {
	f.theme.ControlHoverColor = c
	f.Invalidate()
}

// OnSizeChanged records the new client size, repositions the controls and
// requests a repaint. It reports whether the size actually changed.
func (f *Frame) OnSizeChanged(s Size) bool {
	if s == f.size {
		return false
	}
	f.size = s
	f.layoutChanged()
	return true
}

// OnPaint draws the chrome onto s. It never changes layout state.
func (f *Frame) OnPaint(s Surface) {
	paint(s, paintState{
		size:     f.size,
		params:   f.params,
		theme:    f.theme,
		icon:     f.icon,
		controls: f.controls.Controls(),
	})
}

// OnNonClientHitTest classifies a client point for the host window manager.
// Points over a caption control answer ZoneNone so the click reaches the
// control instead of starting a move.
func (f *Frame) OnNonClientHitTest(pt Point) Zone {
	if f.controls.At(pt) != nil {
		return ZoneNone
	}
	return ClassifyAt(pt, f.size, f.params)
}

// OnScreenHitTest is OnNonClientHitTest for a screen point and the screen
// position of the client origin.
func (f *Frame) OnScreenHitTest(screen, origin Point) Zone {
	return f.OnNonClientHitTest(Point{X: screen.X - origin.X, Y: screen.Y - origin.Y})
}

// OnPointerMove updates control hover state and reports whether it changed.
func (f *Frame) OnPointerMove(pt Point) bool {
	if f.controls.hover(pt) {
		f.Invalidate()
		return true
	}
	return false
}

// OnPointerDown arms the control under pt. It reports whether a control
// took the press.
func (f *Frame) OnPointerDown(pt Point) bool {
	if f.controls.press(pt) {
		f.Invalidate()
		return true
	}
	return false
}

// OnPointerUp completes a control click. The command of the activated
// control, if any, is emitted and returned.
func (f *Frame) OnPointerUp(pt Point) Command {
	armed := f.controls.pressed != nil
	cmd := f.controls.release(pt)
	if armed {
		f.Invalidate()
	}
	if cmd != CommandNone {
		if DebugMode {
			log.Printf("chrome: control requested %v", cmd)
		}
		f.handler.Emit(cmd)
	}
	return cmd
}

// OnPointerLeave clears hover and pressed state.
func (f *Frame) OnPointerLeave() {
	if f.controls.leave() {
		f.Invalidate()
	}
}

// Release drops the icon and closes the command channel. Hosts call it when
// the window is destroyed.
func (f *Frame) Release() {
	f.iconSrc = nil
	f.icon = nil
	if f.handler != nil && f.handler.Commands != nil {
		close(f.handler.Commands)
		f.handler.Commands = nil
	}
}
