package ebhost

import (
	"time"

	"golang.org/x/time/rate"
)

var (
	// DebugMode logs zone changes, drags and executed commands.
	DebugMode bool

	hoverLogLimiter = rate.NewLimiter(rate.Every(250*time.Millisecond), 1)
)
