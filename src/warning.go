package colorpicker

import (
	"time"
)

// Scheduler runs fn once after d. The returned function cancels the call if
// it has not happened yet.
//
// The Controller is not safe for concurrent use, so a Scheduler must run fn
// on the goroutine that owns the Controller. The event loop provides one.
type Scheduler func(d time.Duration, fn func()) (stop func() bool)

// warning is the transient message shown after clamping or a failed edit.
// A new message replaces the old one, and only the timer of the latest
// message may hide it.
type warning struct {
	delay    time.Duration
	schedule Scheduler
	message  string
	serial   int
	stop     func() bool
}

// newWarning returns a warning hidden after delay. Without a Scheduler the
// message stays until the next one replaces it.
func newWarning(delay time.Duration, schedule Scheduler) *warning {
	if schedule == nil {
		delay = 0
	}
	return &warning{delay: delay, schedule: schedule}
}

func (w *warning) show(view View, message string) {
	w.cancel()
	w.serial++
	w.message = message
	view.ShowWarning(message)

	if w.delay > 0 {
		serial := w.serial
		w.stop = w.schedule(w.delay, func() {
			w.expire(view, serial)
		})
	}
}

func (w *warning) expire(view View, serial int) {
	if serial != w.serial {
		return
	}
	w.stop = nil
	w.hide(view)
}

func (w *warning) hide(view View) {
	w.cancel()
	if len(w.message) == 0 {
		return
	}
	w.message = ""
	w.serial++
	view.HideWarning()
}

func (w *warning) cancel() {
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
}
