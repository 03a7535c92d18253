package colorpicker

import (
	"encoding/json"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/junegunn/colorpicker/src/conv"
	"github.com/junegunn/colorpicker/src/util"
)

/*
Terminal -> actions -> Loop -> Controller -> View
GUI      -> actions -^
Server   -> actions -^   (GET waits on responses)
Timers   -> actions -^

Loop -> EvtQuit -> Run
*/

// PaletteView is implemented by views that show the swatches. active is the
// index of the swatch matching the current color, or -1.
type PaletteView interface {
	ShowPalette(category Category, active int)
}

// Flusher is implemented by views that draw the changes in one go after
// every list of actions
type Flusher interface {
	Flush()
}

// Loop owns the Controller. Every change arrives as a list of actions and
// runs to completion before the next one is taken.
type Loop struct {
	controller *Controller
	view       View
	palette    *Palette
	history    *History
	actions    chan []*action
	responses  chan string
	eventBox   *util.EventBox
	done       chan struct{}
	accepted   *Color
}

// snapshot is the state returned to GET requests
type snapshot struct {
	Color    Color      `json:"color"`
	Preview  Preview    `json:"preview"`
	Hue      int        `json:"hue"`
	Cursor   [2]float64 `json:"cursor"`
	Warning  string     `json:"warning"`
	Palette  string     `json:"palette"`
	Swatches []string   `json:"swatches"`
}

// NewLoop returns a Loop driving the view. history may be nil.
func NewLoop(view View, palette *Palette, history *History, warningDelay time.Duration, eventBox *util.EventBox) *Loop {
	if view == nil {
		view = NopView{}
	}
	if palette == nil {
		palette = NewPalette(nil)
	}
	l := &Loop{
		view:      view,
		palette:   palette,
		history:   history,
		actions:   make(chan []*action, 16),
		responses: make(chan string),
		eventBox:  eventBox,
		done:      make(chan struct{})}
	l.controller = NewController(view, warningDelay, l.schedule)
	return l
}

// schedule is the Scheduler of the Controller. The callback is posted back
// to the loop instead of running on the timer goroutine.
func (l *Loop) schedule(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, func() {
		l.Post(&action{t: actExpireWarning, fn: fn})
	}).Stop
}

// Post hands actions to the loop. It does not block once the loop has
// finished.
func (l *Loop) Post(actions ...*action) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.actions <- actions:
		return true
	case <-l.done:
		return false
	}
}

// Query returns the JSON snapshot of the current state
func (l *Loop) Query() (string, bool) {
	if !l.Post(&action{t: actResponse}) {
		return "", false
	}
	select {
	case response := <-l.responses:
		return response, true
	case <-l.done:
		return "", false
	}
}

// Accepted returns the accepted color, or nil
func (l *Loop) Accepted() *Color {
	return l.accepted
}

// Loop processes actions until accept or abort
func (l *Loop) Loop() {
	l.refresh()
	for actions := range l.actions {
		if code, quit := l.apply(actions); quit {
			close(l.done)
			l.eventBox.Set(EvtQuit, code)
			return
		}
	}
}

// Quit stops the loop with the given exit code as if an action asked for it
func (l *Loop) Quit(code int) {
	l.Post(&action{t: actQuit, fields: []Field{Set(code)}})
}

func (l *Loop) apply(actions []*action) (int, bool) {
	c := l.controller
	for _, a := range actions {
		var err error
		switch a.t {
		case actRGB:
			err = c.UpdateFromRGB(RGBUpdate{a.fields[0], a.fields[1], a.fields[2]})
		case actCMYK:
			err = c.UpdateFromCMYK(CMYKUpdate{a.fields[0], a.fields[1], a.fields[2], a.fields[3]})
		case actHLS:
			err = c.UpdateFromHLS(HLSUpdate{a.fields[0], a.fields[1], a.fields[2]})
		case actHSV:
			err = c.UpdateFromHSV(HSVUpdate{a.fields[0], a.fields[1], a.fields[2]})
		case actHex:
			err = c.UpdateFromHex(a.a)
		case actSwatch:
			err = c.PickSwatch(a.a)
		case actHue:
			err = c.SetHue(a.fields[0].Value())
		case actPick:
			err = c.PickGradient(a.x, a.y)
		case actPalette:
			if err = l.palette.Select(a.a); err != nil {
				c.Warn(err.Error())
			}
		case actCyclePalette:
			l.palette.Cycle(a.fields[0].Value())
		case actPreviousHistory, actNextHistory:
			err = l.browseHistory(a.t == actPreviousHistory)
		case actExpireWarning:
			if a.fn != nil {
				a.fn()
			} else {
				c.ExpireWarning()
			}
		case actResponse:
			l.respond()
		case actAccept:
			return l.accept(), true
		case actAbort:
			return ExitInterrupt, true
		case actQuit:
			return a.fields[0].Value(), true
		}
		if err != nil {
			astilog.Debugf("action %d failed: %v", a.t, err)
		}
	}
	l.refresh()
	return 0, false
}

func (l *Loop) accept() int {
	color := l.controller.State()
	l.accepted = &color
	if l.history != nil {
		if err := l.history.append(color.Hex); err != nil {
			astilog.Errorf("cannot write history: %v", err)
		}
	}
	return ExitOk
}

func (l *Loop) browseHistory(previous bool) error {
	if l.history == nil {
		return nil
	}
	l.history.override(l.controller.State().Hex)
	var hex string
	if previous {
		hex = l.history.previous()
	} else {
		hex = l.history.next()
	}
	if len(hex) == 0 {
		return nil
	}
	return l.controller.UpdateFromHex(hex)
}

func (l *Loop) refresh() {
	l.refreshPalette()
	if f, ok := l.view.(Flusher); ok {
		f.Flush()
	}
}

func (l *Loop) refreshPalette() {
	if pv, ok := l.view.(PaletteView); ok {
		active, exact := l.palette.Nearest(l.controller.State().RGB)
		if !exact {
			active = -1
		}
		pv.ShowPalette(l.palette.Current(), active)
	}
}

func (l *Loop) snapshot() snapshot {
	c := l.controller
	x, y := c.Cursor()
	return snapshot{
		Color:    c.State(),
		Preview:  NewPreview(c.State().RGB),
		Hue:      c.Hue(),
		Cursor:   [2]float64{x, y},
		Warning:  c.Warning(),
		Palette:  l.palette.Current().Name,
		Swatches: l.palette.Current().Colors}
}

func (l *Loop) respond() {
	data, err := json.Marshal(l.snapshot())
	if err != nil {
		astilog.Errorf("cannot encode state: %v", err)
		data = []byte("{}")
	}
	select {
	case l.responses <- string(data):
	case <-time.After(serverTimeout):
		astilog.Debugf("response dropped")
	}
}

// initialize applies the initial color
func (l *Loop) initialize(color string) error {
	if len(color) == 0 {
		return nil
	}
	rgb, err := conv.ParseColor(color)
	if err != nil {
		return err
	}
	return l.controller.UpdateFromRGB(SetRGB(rgb))
}
