package colorpicker

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/junegunn/colorpicker/src/conv"
	"github.com/junegunn/colorpicker/src/tui"
	"github.com/junegunn/colorpicker/src/util"
)

/*
  ┌──────────────────────────────┐
  │           #1E90FF            │  preview
  └──────────────────────────────┘
  ▶ R  ───────────█──────────  30   channels
    ...
    HEX #1E90FF    HSV 210,88,100
  ▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀            gradient (half blocks)
  ▀▀▀▀▀▀▀▀▀▀▀+▀▀▀▀▀▀▀▀
  ██████████|██████████           hue bar
  basic  ██ ██ [] ██ ...          palette
  ! warning
*/

const (
	previewHeight   = 3
	channelTop      = previewHeight + 1
	sliderLeft      = 6
	gradientRows    = 8
	gradientMaxCols = 48
)

type channel struct {
	label string
	t     actionType
	arity int
	index int
	max   int
	get   func(Color) int
}

var channels = []channel{
	{"R", actRGB, 3, 0, 255, func(c Color) int { return c.RGB.R }},
	{"G", actRGB, 3, 1, 255, func(c Color) int { return c.RGB.G }},
	{"B", actRGB, 3, 2, 255, func(c Color) int { return c.RGB.B }},
	{"C", actCMYK, 4, 0, 100, func(c Color) int { return c.CMYK.C }},
	{"M", actCMYK, 4, 1, 100, func(c Color) int { return c.CMYK.M }},
	{"Y", actCMYK, 4, 2, 100, func(c Color) int { return c.CMYK.Y }},
	{"K", actCMYK, 4, 3, 100, func(c Color) int { return c.CMYK.K }},
	{"H", actHLS, 3, 0, 360, func(c Color) int { return c.HLS.H }},
	{"L", actHLS, 3, 1, 100, func(c Color) int { return c.HLS.L }},
	{"S", actHLS, 3, 2, 100, func(c Color) int { return c.HLS.S }},
}

// update returns the action that sets the channel to v and keeps the others
func (ch channel) update(v int) *action {
	fields := make([]Field, ch.arity)
	fields[ch.index] = Set(v)
	return &action{t: ch.t, fields: fields}
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// fraction returns the relative position of x in the rectangle in [0, 1]
func fraction(pos int, origin int, length int) float64 {
	if length <= 1 {
		return 0
	}
	return conv.ClampFloat(float64(pos-origin)/float64(length-1), 0, 1)
}

type layout struct {
	sliders     rect
	gradient    rect
	hueBar      rect
	swatches    rect
	swatchWidth int
}

// Terminal is the full-screen View. The View methods run on the goroutine
// of the Loop while Loop of Terminal reads the input, so the state is
// guarded by a mutex.
type Terminal struct {
	mutex    sync.Mutex
	renderer tui.Renderer
	post     func(...*action) bool
	color    Color
	preview  Preview
	hue      int
	cursorX  float64
	cursorY  float64
	warning  string
	category Category
	active   int
	selected int
	editing  bool
	input    []rune
	layout   layout
}

// NewTerminal returns a Terminal drawing on the renderer. post hands the
// actions made from the input to the Loop.
func NewTerminal(renderer tui.Renderer, post func(...*action) bool) *Terminal {
	return &Terminal{renderer: renderer, post: post, active: -1}
}

func (t *Terminal) ShowRGB(rgb conv.RGB) {
	t.mutex.Lock()
	t.color.RGB = rgb
	t.mutex.Unlock()
}

func (t *Terminal) ShowCMYK(cmyk conv.CMYK) {
	t.mutex.Lock()
	t.color.CMYK = cmyk
	t.mutex.Unlock()
}

func (t *Terminal) ShowHLS(hls conv.HLS) {
	t.mutex.Lock()
	t.color.HLS = hls
	t.mutex.Unlock()
}

func (t *Terminal) ShowHex(hex string) {
	t.mutex.Lock()
	t.color.Hex = hex
	t.mutex.Unlock()
}

func (t *Terminal) ShowPreview(preview Preview) {
	t.mutex.Lock()
	t.preview = preview
	t.mutex.Unlock()
}

func (t *Terminal) ShowGradient(hue int) {
	t.mutex.Lock()
	t.hue = hue
	t.mutex.Unlock()
}

func (t *Terminal) MoveCursor(x, y float64) {
	t.mutex.Lock()
	t.cursorX, t.cursorY = x, y
	t.mutex.Unlock()
}

func (t *Terminal) ShowWarning(message string) {
	t.mutex.Lock()
	t.warning = message
	t.mutex.Unlock()
}

func (t *Terminal) HideWarning() {
	t.mutex.Lock()
	t.warning = ""
	t.mutex.Unlock()
}

// ShowPalette implements PaletteView
func (t *Terminal) ShowPalette(category Category, active int) {
	t.mutex.Lock()
	t.category = category
	t.active = active
	t.mutex.Unlock()
}

// Flush redraws the screen
func (t *Terminal) Flush() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.render()
}

// Loop reads the input and posts the resulting actions until the renderer
// is closed or the Loop stops accepting actions
func (t *Terminal) Loop() {
	for {
		event := t.renderer.GetChar()
		if event.Type == tui.Fatal {
			return
		}

		t.mutex.Lock()
		actions := t.handle(event)
		t.mutex.Unlock()

		if len(actions) > 0 && !t.post(actions...) {
			return
		}
	}
}

// handle translates an event into actions. Changes of the local state, such
// as the selected channel, are drawn immediately.
func (t *Terminal) handle(event tui.Event) []*action {
	if t.editing {
		return t.handleInput(event)
	}

	selected := channels[t.selected]
	adjust := func(delta int) []*action {
		return []*action{selected.update(selected.get(t.color) + delta)}
	}
	hue := func(delta int) []*action {
		return []*action{{t: actHue, fields: []Field{Set(util.Constrain(t.hue+delta, 0, 360))}}}
	}

	switch event.Type {
	case tui.Enter:
		return toActions(actAccept)
	case tui.Esc, tui.CtrlC:
		return toActions(actAbort)
	case tui.CtrlP:
		return toActions(actPreviousHistory)
	case tui.CtrlN:
		return toActions(actNextHistory)
	case tui.Up, tui.BTab:
		t.selectChannel(t.selected - 1)
	case tui.Down, tui.Tab:
		t.selectChannel(t.selected + 1)
	case tui.Left:
		return adjust(-valueStep)
	case tui.Right:
		return adjust(valueStep)
	case tui.PageDown:
		return adjust(-valueStepLarge)
	case tui.PageUp:
		return adjust(valueStepLarge)
	case tui.Home:
		return []*action{selected.update(0)}
	case tui.End:
		return []*action{selected.update(selected.max)}
	case tui.Resize:
		t.renderer.Clear()
		t.render()
	case tui.Rune:
		switch event.Char {
		case '#':
			t.editing = true
			t.input = []rune{}
			t.render()
		case 'k':
			t.selectChannel(t.selected - 1)
		case 'j':
			t.selectChannel(t.selected + 1)
		case 'h':
			return adjust(-valueStep)
		case 'l':
			return adjust(valueStep)
		case '[':
			return []*action{{t: actCyclePalette, fields: []Field{Set(-1)}}}
		case ']':
			return []*action{{t: actCyclePalette, fields: []Field{Set(1)}}}
		case ',':
			return hue(-hueStep)
		case '.':
			return hue(hueStep)
		case '<':
			return hue(-hueStepLarge)
		case '>':
			return hue(hueStepLarge)
		}
	case tui.Mouse:
		return t.handleMouse(event.MouseEvent)
	}
	return nil
}

func (t *Terminal) handleInput(event tui.Event) []*action {
	switch event.Type {
	case tui.Enter:
		t.editing = false
		hex := "#" + string(t.input)
		t.render()
		return []*action{{t: actHex, a: hex}}
	case tui.Esc, tui.CtrlC:
		t.editing = false
	case tui.Backspace:
		if len(t.input) > 0 {
			t.input = t.input[:len(t.input)-1]
		}
	case tui.CtrlU:
		t.input = []rune{}
	case tui.Rune:
		if len(t.input) < 6 && strings.ContainsRune("0123456789abcdefABCDEF", event.Char) {
			t.input = append(t.input, event.Char)
		}
	}
	t.render()
	return nil
}

func (t *Terminal) handleMouse(me *tui.MouseEvent) []*action {
	if me == nil {
		return nil
	}
	l := t.layout
	if me.S != 0 {
		if me.Y >= l.sliders.y && me.Y < l.sliders.y+l.sliders.h {
			t.selectChannel(me.Y - l.sliders.y)
			ch := channels[t.selected]
			return []*action{ch.update(ch.get(t.color) + me.S*valueStep)}
		}
		if l.hueBar.contains(me.X, me.Y) || l.gradient.contains(me.X, me.Y) {
			return []*action{{t: actHue, fields: []Field{Set(util.Constrain(t.hue+me.S*hueStep, 0, 360))}}}
		}
		return nil
	}
	if !me.Left || !me.Down {
		return nil
	}

	switch {
	case l.gradient.contains(me.X, me.Y):
		return []*action{{t: actPick,
			x: fraction(me.X, l.gradient.x, l.gradient.w),
			y: fraction(me.Y, l.gradient.y, l.gradient.h)}}
	case l.hueBar.contains(me.X, me.Y):
		hue := int(math.Round(fraction(me.X, l.hueBar.x, l.hueBar.w) * 360))
		return []*action{{t: actHue, fields: []Field{Set(hue)}}}
	case l.swatches.contains(me.X, me.Y):
		idx := (me.X - l.swatches.x) / l.swatchWidth
		if idx < len(t.category.Colors) {
			return []*action{{t: actSwatch, a: t.category.Colors[idx]}}
		}
	case l.sliders.contains(me.X, me.Y):
		t.selectChannel(me.Y - l.sliders.y)
		ch := channels[t.selected]
		value := int(math.Round(fraction(me.X, l.sliders.x, l.sliders.w) * float64(ch.max)))
		return []*action{ch.update(value)}
	}
	return nil
}

func (t *Terminal) selectChannel(idx int) {
	t.selected = util.Cycle(t.selected, idx-t.selected, len(channels))
	t.render()
}

func (t *Terminal) render() {
	width, height := t.renderer.Size()
	if width <= 0 || height <= 0 {
		return
	}
	t.renderer.Clear()

	normal := tui.NewColorPair(tui.ColDefault, tui.ColDefault)
	background := tui.HexToColor(t.preview.Background)
	text := tui.HexToColor(t.preview.Text)

	// Preview
	for y := 0; y < previewHeight; y++ {
		t.renderer.Fill(0, y, width, ' ', tui.NewColorPair(text, background))
	}
	label := t.color.Hex
	t.renderer.Print(util.Max(0, (width-len(label))/2), previewHeight/2, label, tui.NewColorPair(text, background), tui.Bold)

	// Channels
	sliderWidth := util.Max(width-sliderLeft-7, 1)
	t.layout.sliders = rect{sliderLeft, channelTop, sliderWidth, len(channels)}
	for idx, ch := range channels {
		y := channelTop + idx
		marker := " "
		attr := tui.AttrRegular
		if idx == t.selected {
			marker = "▶"
			attr = tui.Bold
		}
		t.renderer.Print(0, y, fmt.Sprintf("%s %s", marker, ch.label), normal, attr)
		t.renderSlider(ch, y, sliderWidth)
		t.renderer.Print(sliderLeft+sliderWidth+1, y, fmt.Sprintf("%4d", ch.get(t.color)), normal, attr)
	}

	// HEX and HSV
	y := channelTop + len(channels)
	if t.editing {
		t.renderer.Print(2, y, "HEX #"+string(t.input)+"_", normal, tui.Bold)
	} else {
		hsv := conv.RGBToHSV(t.color.RGB.R, t.color.RGB.G, t.color.RGB.B)
		t.renderer.Print(2, y, fmt.Sprintf("HEX %s    HSV %d,%d,%d", t.color.Hex, hsv.H, hsv.S, hsv.V), normal, tui.AttrRegular)
	}

	// Gradient
	y += 2
	cols := util.Constrain(width-4, 1, gradientMaxCols)
	t.layout.gradient = rect{2, y, cols, gradientRows}
	t.renderGradient(t.layout.gradient)

	// Hue bar
	y += gradientRows + 1
	t.layout.hueBar = rect{2, y, cols, 1}
	t.renderHueBar(t.layout.hueBar)

	// Palette
	y += 2
	name := t.category.Name + " "
	left := 2 + t.renderer.Print(2, y, name, normal, tui.Bold)
	t.layout.swatchWidth = 3
	t.layout.swatches = rect{left, y, len(t.category.Colors) * t.layout.swatchWidth, 1}
	for idx, hex := range t.category.Colors {
		x := left + idx*t.layout.swatchWidth
		swatch := tui.HexToColor(hex)
		content := "  "
		if idx == t.active {
			content = "[]"
		}
		rgb, _ := conv.HexToRGB(hex)
		fg := tui.HexToColor(conv.TextColor(rgb.R, rgb.G, rgb.B))
		t.renderer.Print(x, y, content, tui.NewColorPair(fg, swatch), tui.AttrRegular)
	}

	// Warning
	y += 2
	if len(t.warning) > 0 {
		t.renderer.Print(2, y, "! "+t.warning, tui.NewColorPair(tui.NewColor(255, 200, 0), tui.ColDefault), tui.Bold)
	}

	help := "↑↓ channel  ←→ adjust  # hex  [] palette  <> hue  Enter accept  Esc abort"
	if y+2 < height {
		t.renderer.Print(0, height-1, help, normal, tui.Dim)
	}
	t.renderer.Show()
}

func (t *Terminal) renderSlider(ch channel, y int, width int) {
	value := ch.get(t.color)
	knob := int(math.Round(float64(value) * float64(width-1) / float64(ch.max)))
	track := tui.NewColorPair(tui.ColDefault, tui.ColDefault)
	for x := 0; x < width; x++ {
		if ch.t == actRGB {
			// Show the colors the channel can reach
			rgb := [3]int{t.color.RGB.R, t.color.RGB.G, t.color.RGB.B}
			rgb[ch.index] = int(math.Round(float64(x) * 255 / float64(util.Max(width-1, 1))))
			track = tui.NewColorPair(tui.ColDefault, tui.NewColor(rgb[0], rgb[1], rgb[2]))
		}
		r := '─'
		if x == knob {
			r = '█'
		}
		if ch.t == actRGB && x != knob {
			r = ' '
		}
		t.renderer.SetCell(sliderLeft+x, y, r, track, tui.AttrRegular)
	}
}

// renderGradient draws two rows of the gradient per line using half blocks
func (t *Terminal) renderGradient(r rect) {
	pixelRows := r.h * 2
	colorAt := func(col, row int) tui.Color {
		saturation := fraction(col, 0, r.w) * 100
		lightness := 100 - fraction(row, 0, pixelRows)*100
		rgb, err := GradientAt(t.hue, saturation, lightness)
		if err != nil {
			return tui.NewColor(0, 0, 0)
		}
		return tui.NewColor(rgb.R, rgb.G, rgb.B)
	}
	for row := 0; row < r.h; row++ {
		for col := 0; col < r.w; col++ {
			pair := tui.NewColorPair(colorAt(col, row*2), colorAt(col, row*2+1))
			t.renderer.SetCell(r.x+col, r.y+row, '▀', pair, tui.AttrRegular)
		}
	}
	cx := int(math.Round(t.cursorX * float64(r.w-1)))
	cy := int(math.Round(t.cursorY * float64(r.h-1)))
	fg := tui.HexToColor(t.preview.Text)
	t.renderer.SetCell(r.x+cx, r.y+cy, '+', tui.NewColorPair(fg, tui.HexToColor(t.preview.Background)), tui.Bold)
}

func (t *Terminal) renderHueBar(r rect) {
	for col := 0; col < r.w; col++ {
		hue := int(math.Round(fraction(col, 0, r.w) * 360))
		rgb, err := GradientAt(hue, 100, 50)
		if err != nil {
			continue
		}
		t.renderer.SetCell(r.x+col, r.y, ' ', tui.NewColorPair(tui.ColDefault, tui.NewColor(rgb.R, rgb.G, rgb.B)), tui.AttrRegular)
	}
	marker := int(math.Round(float64(t.hue) * float64(r.w-1) / 360))
	rgb, _ := GradientAt(t.hue, 100, 50)
	fg := tui.HexToColor(conv.TextColor(rgb.R, rgb.G, rgb.B))
	t.renderer.SetCell(r.x+marker, r.y, '|', tui.NewColorPair(fg, tui.NewColor(rgb.R, rgb.G, rgb.B)), tui.Bold)
}
