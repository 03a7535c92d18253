package tui

import (
	"os"
	"sync"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// FullscreenRenderer is the tcell implementation of Renderer
type FullscreenRenderer struct {
	screen    tcell.Screen
	mouse     bool
	closeOnce sync.Once
}

// NewFullscreenRenderer returns a Renderer for the terminal
func NewFullscreenRenderer(mouse bool) *FullscreenRenderer {
	return &FullscreenRenderer{mouse: mouse}
}

// newRendererWithScreen is used by tests to run on a simulation screen
func newRendererWithScreen(screen tcell.Screen, mouse bool) *FullscreenRenderer {
	return &FullscreenRenderer{screen: screen, mouse: mouse}
}

func (c Color) style() tcell.Color {
	if c.is24() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func (p ColorPair) style(attr Attr) tcell.Style {
	style := tcell.StyleDefault.Foreground(p.fg.style()).Background(p.bg.style())
	if attr&Bold > 0 {
		style = style.Bold(true)
	}
	if attr&Dim > 0 {
		style = style.Dim(true)
	}
	if attr&Reverse > 0 {
		style = style.Reverse(true)
	}
	return style
}

// Init starts the full-screen mode
func (r *FullscreenRenderer) Init() error {
	if r.screen == nil {
		if os.Getenv("TERM") == "cygwin" {
			os.Setenv("TERM", "")
		}
		encoding.Register()

		s, e := tcell.NewScreen()
		if e != nil {
			return errors.Wrap(e, "cannot open terminal")
		}
		r.screen = s
	}
	if e := r.screen.Init(); e != nil {
		return errors.Wrap(e, "cannot initialize terminal")
	}
	if r.mouse {
		r.screen.EnableMouse()
	} else {
		r.screen.DisableMouse()
	}
	r.screen.HideCursor()
	return nil
}

// Close restores the terminal. It can be called more than once.
func (r *FullscreenRenderer) Close() {
	r.closeOnce.Do(func() {
		if r.screen != nil {
			r.screen.Fini()
		}
	})
}

// Size returns the number of columns and lines
func (r *FullscreenRenderer) Size() (int, int) {
	return r.screen.Size()
}

// Clear clears the screen
func (r *FullscreenRenderer) Clear() {
	r.screen.Clear()
}

// Show flushes the changes to the terminal
func (r *FullscreenRenderer) Show() {
	r.screen.Show()
}

// Interrupt makes the pending GetChar return an Interrupt event
func (r *FullscreenRenderer) Interrupt() {
	r.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// SetCell draws a single cell
func (r *FullscreenRenderer) SetCell(x int, y int, ch rune, pair ColorPair, attr Attr) {
	r.screen.SetContent(x, y, ch, nil, pair.style(attr))
}

// Print draws text starting at (x, y) and returns the number of columns
// used. Text beyond the right edge is cut off.
func (r *FullscreenRenderer) Print(x int, y int, text string, pair ColorPair, attr Attr) int {
	width, _ := r.screen.Size()
	style := pair.style(attr)
	col := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x+col+w > width {
			break
		}
		r.screen.SetContent(x+col, y, ch, nil, style)
		col += w
	}
	return col
}

// Fill draws width cells of the same character
func (r *FullscreenRenderer) Fill(x int, y int, width int, ch rune, pair ColorPair) {
	style := pair.style(AttrRegular)
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// GetChar blocks until the next event
func (r *FullscreenRenderer) GetChar() Event {
	ev := r.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		// Screen finalized
		return Event{Fatal, 0, nil}

	case *tcell.EventResize:
		return Event{Resize, 0, nil}

	case *tcell.EventInterrupt:
		return Event{Interrupt, 0, nil}

	// process mouse events:
	case *tcell.EventMouse:
		x, y := ev.Position()
		button := ev.Buttons()
		mod := ev.Modifiers() != 0
		if button&tcell.WheelDown != 0 {
			return Event{Mouse, 0, &MouseEvent{y, x, -1, false, false, mod}}
		} else if button&tcell.WheelUp != 0 {
			return Event{Mouse, 0, &MouseEvent{y, x, +1, false, false, mod}}
		}
		left := button&tcell.Button1 != 0
		down := left || button&tcell.Button3 != 0
		return Event{Mouse, 0, &MouseEvent{y, x, 0, left, down, mod}}

	// process keyboard:
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return Event{CtrlC, 0, nil}
		case tcell.KeyCtrlN:
			return Event{CtrlN, 0, nil}
		case tcell.KeyCtrlP:
			return Event{CtrlP, 0, nil}
		case tcell.KeyCtrlU:
			return Event{CtrlU, 0, nil}
		case tcell.KeyTab:
			return Event{Tab, 0, nil}
		case tcell.KeyBacktab:
			return Event{BTab, 0, nil}
		case tcell.KeyEnter:
			return Event{Enter, 0, nil}
		case tcell.KeyEsc:
			return Event{Esc, 0, nil}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Event{Backspace, 0, nil}
		case tcell.KeyDelete:
			return Event{Del, 0, nil}

		case tcell.KeyUp:
			return Event{Up, 0, nil}
		case tcell.KeyDown:
			return Event{Down, 0, nil}
		case tcell.KeyLeft:
			return Event{Left, 0, nil}
		case tcell.KeyRight:
			return Event{Right, 0, nil}
		case tcell.KeyPgUp:
			return Event{PageUp, 0, nil}
		case tcell.KeyPgDn:
			return Event{PageDown, 0, nil}
		case tcell.KeyHome:
			return Event{Home, 0, nil}
		case tcell.KeyEnd:
			return Event{End, 0, nil}

		case tcell.KeyRune:
			return Event{Rune, ev.Rune(), nil}
		}
	}

	return Event{Invalid, 0, nil}
}
