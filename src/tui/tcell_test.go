package tui

import (
	"testing"

	"github.com/gdamore/tcell"
)

func assert(t *testing.T, context string, got interface{}, want interface{}) bool {
	if got == want {
		return true
	}
	t.Errorf("%s = (%T)%v, want (%T)%v", context, got, got, want, want)
	return false
}

func newTestRenderer(t *testing.T) (*FullscreenRenderer, tcell.SimulationScreen) {
	screen := tcell.NewSimulationScreen("UTF-8")
	r := newRendererWithScreen(screen, true)
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(20, 5)
	t.Cleanup(r.Close)
	return r, screen
}

// Test the handling of the tcell keyboard events.
func TestGetCharEventKey(t *testing.T) {
	r, screen := newTestRenderer(t)

	type giveKey struct {
		Type tcell.Key
		Char rune
		Mods tcell.ModMask
	}
	tests := []struct {
		give giveKey
		want Event
	}{
		{giveKey{tcell.KeyETX, rune(tcell.KeyETX), tcell.ModCtrl}, Event{CtrlC, 0, nil}},
		{giveKey{tcell.KeyCtrlN, rune(tcell.KeyCtrlN), tcell.ModCtrl}, Event{CtrlN, 0, nil}},
		{giveKey{tcell.KeyCtrlP, rune(tcell.KeyCtrlP), tcell.ModCtrl}, Event{CtrlP, 0, nil}},
		{giveKey{tcell.KeyTab, rune(tcell.KeyTab), tcell.ModNone}, Event{Tab, 0, nil}},
		{giveKey{tcell.KeyBacktab, 0, tcell.ModShift}, Event{BTab, 0, nil}},
		{giveKey{tcell.KeyEnter, rune(tcell.KeyEnter), tcell.ModNone}, Event{Enter, 0, nil}},
		{giveKey{tcell.KeyEsc, rune(tcell.KeyEsc), tcell.ModNone}, Event{Esc, 0, nil}},
		{giveKey{tcell.KeyBackspace2, rune(tcell.KeyBackspace2), tcell.ModNone}, Event{Backspace, 0, nil}},
		{giveKey{tcell.KeyUp, 0, tcell.ModNone}, Event{Up, 0, nil}},
		{giveKey{tcell.KeyDown, 0, tcell.ModNone}, Event{Down, 0, nil}},
		{giveKey{tcell.KeyLeft, 0, tcell.ModNone}, Event{Left, 0, nil}},
		{giveKey{tcell.KeyRight, 0, tcell.ModNone}, Event{Right, 0, nil}},
		{giveKey{tcell.KeyPgUp, 0, tcell.ModNone}, Event{PageUp, 0, nil}},
		{giveKey{tcell.KeyPgDn, 0, tcell.ModNone}, Event{PageDown, 0, nil}},
		{giveKey{tcell.KeyRune, '#', tcell.ModNone}, Event{Rune, '#', nil}},
		{giveKey{tcell.KeyRune, 'a', tcell.ModNone}, Event{Rune, 'a', nil}},
		{giveKey{tcell.KeyF1, 0, tcell.ModNone}, Event{Invalid, 0, nil}},
	}
	for _, test := range tests {
		screen.InjectKey(test.give.Type, test.give.Char, test.give.Mods)
		event := r.GetChar()
		assert(t, "r.GetChar()", event.Comparable(), test.want)
	}
}

func TestGetCharEventMouse(t *testing.T) {
	r, screen := newTestRenderer(t)

	screen.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	event := r.GetChar()
	if event.Type != Mouse || event.MouseEvent == nil {
		t.Fatalf("mouse event expected: %v", event)
	}
	me := event.MouseEvent
	if me.X != 3 || me.Y != 2 || !me.Left || !me.Down || me.S != 0 {
		t.Errorf("unexpected mouse event: %+v", me)
	}

	screen.InjectMouse(1, 1, tcell.WheelUp, tcell.ModNone)
	if me := r.GetChar().MouseEvent; me == nil || me.S != 1 {
		t.Errorf("unexpected mouse event: %+v", me)
	}
	screen.InjectMouse(1, 1, tcell.WheelDown, tcell.ModNone)
	if me := r.GetChar().MouseEvent; me == nil || me.S != -1 {
		t.Errorf("unexpected mouse event: %+v", me)
	}
}

func TestInterrupt(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.Interrupt()
	assert(t, "r.GetChar()", r.GetChar().Type, Interrupt)
}

func TestPrint(t *testing.T) {
	r, screen := newTestRenderer(t)
	red := NewColor(255, 0, 0)
	blue := NewColor(0, 0, 255)

	if n := r.Print(15, 1, "abcdefgh", NewColorPair(red, blue), Bold); n != 5 {
		t.Errorf("text should be cut off at the edge: %d", n)
	}
	if n := r.Print(0, 2, "한글", NewColorPair(ColDefault, ColDefault), AttrRegular); n != 4 {
		t.Errorf("wide characters take two columns: %d", n)
	}
	r.Fill(0, 3, 4, '=', NewColorPair(red, red))
	r.Show()

	cells, width, _ := screen.GetContents()
	cell := cells[1*width+15]
	if len(cell.Runes) == 0 || cell.Runes[0] != 'a' {
		t.Errorf("unexpected cell: %v", cell.Runes)
	}
	fg, bg, attr := cell.Style.Decompose()
	if r, g, b := fg.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("unexpected foreground: %d %d %d", r, g, b)
	}
	if r, g, b := bg.RGB(); r != 0 || g != 0 || b != 255 {
		t.Errorf("unexpected background: %d %d %d", r, g, b)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("bold expected")
	}

	for x := 0; x < 4; x++ {
		if cell := cells[3*width+x]; len(cell.Runes) == 0 || cell.Runes[0] != '=' {
			t.Errorf("unexpected cell at %d: %v", x, cell.Runes)
		}
	}
}
