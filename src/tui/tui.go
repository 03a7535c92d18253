// Package tui is the full-screen terminal renderer of the color picker
package tui

import (
	"strconv"
)

// Types of user action
type EventType int

const (
	Rune EventType = iota

	CtrlC
	CtrlN
	CtrlP
	CtrlU
	Tab
	BTab
	Enter
	Esc
	Backspace
	Del

	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End

	Mouse
	Resize
	Interrupt
	Invalid
	Fatal
)

// Event is a key, mouse or screen event
type Event struct {
	Type       EventType
	Char       rune
	MouseEvent *MouseEvent
}

// MouseEvent describes a click or a wheel scroll. S is +1 for scrolling up
// and -1 for scrolling down.
type MouseEvent struct {
	Y    int
	X    int
	S    int
	Left bool
	Down bool
	Mod  bool
}

// Key returns the event of a printable character
func Key(r rune) Event {
	return Event{Rune, r, nil}
}

// Comparable returns the event without the mouse event pointer
func (e Event) Comparable() Event {
	return Event{e.Type, e.Char, nil}
}

// Color is either the default color or a 24-bit color
type Color int32

const (
	colDefault Color = -1
)

// ColDefault is the default color of the terminal
const ColDefault = colDefault

// IsDefault returns true for the default color
func (c Color) IsDefault() bool {
	return c == colDefault
}

func (c Color) is24() bool {
	return c > 0 && (c&(1<<24)) > 0
}

// RGB returns the channels of a 24-bit color
func (c Color) RGB() (int, int, int) {
	return int((c >> 16) & 0xff), int((c >> 8) & 0xff), int(c & 0xff)
}

// NewColor returns the 24-bit color of the channels
func NewColor(r, g, b int) Color {
	return Color((1 << 24) + ((r & 0xff) << 16) + ((g & 0xff) << 8) + (b & 0xff))
}

// HexToColor parses #RRGGBB. The default color is returned for anything
// else.
func HexToColor(str string) Color {
	if len(str) != 7 || str[0] != '#' {
		return colDefault
	}
	num, err := strconv.ParseInt(str[1:], 16, 64)
	if err != nil {
		return colDefault
	}
	return Color((1 << 24) + num)
}

// ColorPair is a foreground and background color
type ColorPair struct {
	fg Color
	bg Color
}

// NewColorPair returns a ColorPair
func NewColorPair(fg Color, bg Color) ColorPair {
	return ColorPair{fg, bg}
}

// Fg returns the foreground color
func (p ColorPair) Fg() Color {
	return p.fg
}

// Bg returns the background color
func (p ColorPair) Bg() Color {
	return p.bg
}

// Attr is a text attribute
type Attr int32

// Attributes
const (
	AttrRegular Attr = 0
	Bold        Attr = 1 << iota
	Dim
	Reverse
)

// Renderer draws cells on the terminal and reads its input
type Renderer interface {
	Init() error
	Close()
	Size() (int, int)
	Clear()
	Show()
	GetChar() Event
	Interrupt()
	SetCell(x int, y int, r rune, pair ColorPair, attr Attr)
	Print(x int, y int, text string, pair ColorPair, attr Attr) int
	Fill(x int, y int, width int, r rune, pair ColorPair)
}
