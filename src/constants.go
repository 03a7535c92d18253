package colorpicker

import (
	"time"

	"github.com/junegunn/colorpicker/src/util"
)

const (
	// Controller
	defaultWarningDelay = 5 * time.Second

	// Gradient
	gradientMinPartitions = 4
	gradientMaxPartitions = 32
	gradientWidth         = 300
	gradientHeight        = 300

	// Server
	maxRequestSize = 64 * 1024
	serverTimeout  = 2 * time.Second

	// History
	defaultHistoryMax int = 100

	// Hue slider step in the terminal
	hueStep        = 1
	hueStepLarge   = 10
	valueStep      = 1
	valueStepLarge = 10
)

// Loop events
const (
	EvtQuit util.EventType = iota
)

// Exit codes
const (
	ExitOk        = 0
	ExitError     = 2
	ExitCancel    = 1
	ExitInterrupt = 130
)
