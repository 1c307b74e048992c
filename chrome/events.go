package chrome

import "log"

// Command is a window lifecycle request issued by a caption control. The
// host executes it; the frame never changes window state itself.
type Command int

const (
	CommandNone Command = iota
	CommandMinimize
	CommandClose
)

func (c Command) String() string {
	switch c {
	case CommandMinimize:
		return "minimize"
	case CommandClose:
		return "close"
	default:
		return "none"
	}
}

// CommandHandler provides both channel and callback based command delivery.
type CommandHandler struct {
	Commands chan Command
	Handle   func(Command)
}

// Emit delivers the command through the channel and callback if present. If
// the channel is full the command is dropped and logged rather than blocking
// the UI thread.
func (h *CommandHandler) Emit(cmd Command) {
	if h == nil || cmd == CommandNone {
		return
	}
	if h.Commands != nil {
		select {
		case h.Commands <- cmd:
		default:
			log.Printf("command channel full, dropping command: %v", cmd)
		}
	}
	if h.Handle != nil {
		h.Handle(cmd)
	}
}

func newCommandHandler() *CommandHandler {
	return &CommandHandler{Commands: make(chan Command, 8)}
}
