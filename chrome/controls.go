package chrome

import "log"

// ControlSlot is a caption control position counted from the right edge,
// starting at 1. Each slot is ControlWidth wide.
type ControlSlot int

const (
	SlotClose    ControlSlot = 1
	SlotMinimize ControlSlot = 3
)

// ControlKind identifies a built-in caption control.
type ControlKind int

const (
	ControlMinimize ControlKind = iota
	ControlClose
)

func (k ControlKind) String() string {
	switch k {
	case ControlMinimize:
		return "minimize"
	case ControlClose:
		return "close"
	}
	return "unknown"
}

// Command returns the window command the control requests when activated.
func (k ControlKind) Command() Command {
	switch k {
	case ControlMinimize:
		return CommandMinimize
	case ControlClose:
		return CommandClose
	}
	return CommandNone
}

// Control is a fixed-size clickable region in the caption strip.
type Control struct {
	Kind   ControlKind
	Slot   ControlSlot
	Bounds Rect

	Hovered bool
	Pressed bool
}

// ControlSet owns the caption controls. Update creates them on first use and
// only repositions them afterwards.
type ControlSet struct {
	controls []*Control
	pressed  *Control
}

// Update lays out the controls for the given client width. Repeated calls
// never add controls.
func (cs *ControlSet) Update(clientWidth int, p Params) {
	if len(cs.controls) == 0 {
		cs.controls = []*Control{
			{Kind: ControlMinimize, Slot: SlotMinimize},
			{Kind: ControlClose, Slot: SlotClose},
		}
		if DebugMode {
			log.Printf("chrome: created %d caption controls", len(cs.controls))
		}
	}
	for _, c := range cs.controls {
		c.Bounds = slotRect(c.Slot, clientWidth, p)
	}
}

func slotRect(slot ControlSlot, clientWidth int, p Params) Rect {
	return Rect{
		X: clientWidth - p.ControlWidth*int(slot),
		Y: 0,
		W: p.ControlWidth,
		H: p.ControlHeight,
	}
}

// Len returns the number of controls created so far.
func (cs *ControlSet) Len() int { return len(cs.controls) }

// Controls returns the controls in paint order.
func (cs *ControlSet) Controls() []*Control { return cs.controls }

// Get returns the control of the given kind, or nil before the first Update.
func (cs *ControlSet) Get(kind ControlKind) *Control {
	for _, c := range cs.controls {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// At returns the control under pt, or nil.
func (cs *ControlSet) At(pt Point) *Control {
	for i := len(cs.controls) - 1; i >= 0; i-- {
		if cs.controls[i].Bounds.Contains(pt) {
			return cs.controls[i]
		}
	}
	return nil
}

// hover updates the hover flags and reports whether any changed.
func (cs *ControlSet) hover(pt Point) bool {
	changed := false
	over := cs.At(pt)
	for _, c := range cs.controls {
		h := c == over
		if c.Hovered != h {
			c.Hovered = h
			changed = true
		}
	}
	return changed
}

// press arms the control under pt. It reports whether a control was hit.
func (cs *ControlSet) press(pt Point) bool {
	c := cs.At(pt)
	if c == nil {
		return false
	}
	c.Pressed = true
	cs.pressed = c
	return true
}

// release disarms the pressed control and returns the command it requests if
// the pointer is still over it.
func (cs *ControlSet) release(pt Point) Command {
	c := cs.pressed
	if c == nil {
		return CommandNone
	}
	c.Pressed = false
	cs.pressed = nil
	if !c.Bounds.Contains(pt) {
		return CommandNone
	}
	return c.Kind.Command()
}

// leave clears hover and pressed state, e.g. when the pointer exits the window.
func (cs *ControlSet) leave() bool {
	changed := false
	for _, c := range cs.controls {
		if c.Hovered || c.Pressed {
			changed = true
		}
		c.Hovered = false
		c.Pressed = false
	}
	cs.pressed = nil
	return changed
}
