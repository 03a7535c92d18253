package colorpicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/junegunn/colorpicker/src/conv"
	"github.com/pkg/errors"
)

// ErrBusy is returned when an update arrives while another one is being
// applied. The update is dropped.
var ErrBusy = errors.New("update already in progress")

// Color is one color in every representation the picker shows
type Color struct {
	RGB  conv.RGB  `json:"rgb"`
	CMYK conv.CMYK `json:"cmyk"`
	HLS  conv.HLS  `json:"hls"`
	HSV  conv.HSV  `json:"hsv"`
	Hex  string    `json:"hex"`
}

// Preview describes the swatch of the current color
type Preview struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

const (
	lightBorder = "rgba(255, 255, 255, 0.3)"
	darkBorder  = "rgba(0, 0, 0, 0.3)"
)

// NewPreview returns the preview of the given color
func NewPreview(rgb conv.RGB) Preview {
	text := conv.TextColor(rgb.R, rgb.G, rgb.B)
	border := darkBorder
	if text == "#FFFFFF" {
		border = lightBorder
	}
	return Preview{Background: rgb.Hex(), Text: text, Border: border}
}

// View receives every change of the displayed state
type View interface {
	ShowRGB(rgb conv.RGB)
	ShowCMYK(cmyk conv.CMYK)
	ShowHLS(hls conv.HLS)
	ShowHex(hex string)
	ShowPreview(preview Preview)
	ShowGradient(hue int)
	MoveCursor(x, y float64)
	ShowWarning(message string)
	HideWarning()
}

// NopView discards everything
type NopView struct{}

func (NopView) ShowRGB(conv.RGB)        {}
func (NopView) ShowCMYK(conv.CMYK)      {}
func (NopView) ShowHLS(conv.HLS)        {}
func (NopView) ShowHex(string)          {}
func (NopView) ShowPreview(Preview)     {}
func (NopView) ShowGradient(int)        {}
func (NopView) MoveCursor(_, _ float64) {}
func (NopView) ShowWarning(string)      {}
func (NopView) HideWarning()            {}

// Controller keeps the color models in sync. Every entry point converts the
// edited model to RGB, derives the others from it, and pushes the result to
// the View. An update that arrives while the View is being refreshed is
// dropped, so the View may call back into the Controller from its Show
// methods without recursing.
//
// Controller is not safe for concurrent use.
type Controller struct {
	view     View
	updating bool
	color    Color
	warning  *warning

	// Gradient state. hue selects the gradient, saturation and lightness
	// are the cursor position on it.
	hue        int
	saturation float64
	lightness  float64
}

// NewController returns a Controller showing white. Warnings are hidden
// after delay by the given Scheduler, or never if delay is zero or schedule
// is nil.
func NewController(view View, delay time.Duration, schedule Scheduler) *Controller {
	if view == nil {
		view = NopView{}
	}
	c := &Controller{view: view, warning: newWarning(delay, schedule)}
	if err := c.UpdateFromRGB(SetRGB(conv.White)); err != nil {
		// Unreachable with valid constants
		astilog.Errorf("failed to initialize color: %v", err)
	}
	return c
}

// State returns the current color
func (c *Controller) State() Color {
	return c.color
}

// Hue returns the hue of the gradient
func (c *Controller) Hue() int {
	return c.hue
}

// Cursor returns the position of the gradient cursor. Both coordinates are
// in [0, 1]; x grows with saturation and y shrinks with lightness.
func (c *Controller) Cursor() (float64, float64) {
	return c.saturation / 100, 1 - c.lightness/100
}

// Warning returns the message currently shown, or an empty string
func (c *Controller) Warning() string {
	return c.warning.message
}

// Busy returns true while an update is being applied
func (c *Controller) Busy() bool {
	return c.updating
}

func (c *Controller) begin() bool {
	if c.updating {
		astilog.Debugf("dropping nested update")
		return false
	}
	c.updating = true
	return true
}

func (c *Controller) end() {
	c.updating = false
}

// UpdateFromRGB applies an RGB edit. Out-of-range values are clamped with a
// warning.
func (c *Controller) UpdateFromRGB(u RGBUpdate) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()
	return c.applyRGB(u)
}

// applyRGB is UpdateFromRGB for callers already holding the guard
func (c *Controller) applyRGB(u RGBUpdate) error {
	var notes []string
	cur := c.color.RGB
	rgb := conv.RGB{
		R: u.R.resolve("R", cur.R, 0, 255, &notes),
		G: u.G.resolve("G", cur.G, 0, 255, &notes),
		B: u.B.resolve("B", cur.B, 0, 255, &notes)}

	next, err := fromRGB(rgb)
	if err != nil {
		return c.fail(err)
	}
	c.follow(next.HLS)
	c.commit(next, notes)
	return nil
}

// UpdateFromCMYK applies a CMYK edit. The CMYK fields keep the values as
// entered while the other models are derived from the converted RGB.
func (c *Controller) UpdateFromCMYK(u CMYKUpdate) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	var notes []string
	cur := c.color.CMYK
	cmyk := conv.CMYK{
		C: u.C.resolve("C", cur.C, 0, 100, &notes),
		M: u.M.resolve("M", cur.M, 0, 100, &notes),
		Y: u.Y.resolve("Y", cur.Y, 0, 100, &notes),
		K: u.K.resolve("K", cur.K, 0, 100, &notes)}

	raw, err := conv.CMYKToRGBUnclamped(cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	if err != nil {
		return c.fail(err)
	}
	rgb, bounds := CheckColorBounds(raw)
	notes = append(notes, bounds...)

	next, err := fromRGB(rgb)
	if err != nil {
		return c.fail(err)
	}
	next.CMYK = cmyk
	c.follow(next.HLS)
	c.commit(next, notes)
	return nil
}

// UpdateFromHLS applies an HLS edit. The gradient follows the entered
// values rather than the ones derived back from RGB.
func (c *Controller) UpdateFromHLS(u HLSUpdate) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	var notes []string
	cur := c.color.HLS
	hls := conv.HLS{
		H: u.H.resolve("H", cur.H, 0, 360, &notes),
		L: u.L.resolve("L", cur.L, 0, 100, &notes),
		S: u.S.resolve("S", cur.S, 0, 100, &notes)}

	raw, err := conv.HLSToRGBUnclamped(hls.H, hls.L, hls.S)
	if err != nil {
		return c.fail(err)
	}
	rgb, bounds := CheckColorBounds(raw)
	notes = append(notes, bounds...)

	next, err := fromRGB(rgb)
	if err != nil {
		return c.fail(err)
	}
	next.HLS = hls
	c.follow(hls)
	c.commit(next, notes)
	return nil
}

// UpdateFromHSV applies an HSV edit. Hue wraps around 360 while saturation
// and value are clamped.
func (c *Controller) UpdateFromHSV(u HSVUpdate) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	var notes []string
	cur := c.color.HSV
	hsv := conv.HSV{H: cur.H,
		S: u.S.resolve("S", cur.S, 0, 100, &notes),
		V: u.V.resolve("V", cur.V, 0, 100, &notes)}
	if u.H.IsSet() {
		hsv.H = ((u.H.Value() % 360) + 360) % 360
	}

	next, err := fromRGB(conv.HSVToRGB(hsv.H, hsv.S, hsv.V))
	if err != nil {
		return c.fail(err)
	}
	next.HSV = hsv
	c.follow(next.HLS)
	c.commit(next, notes)
	return nil
}

// UpdateFromHex applies a hex color. A malformed string leaves the color
// unchanged and shows a warning.
func (c *Controller) UpdateFromHex(hex string) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	rgb, err := conv.HexToRGB(strings.TrimSpace(hex))
	if err != nil {
		return c.fail(err)
	}
	return c.applyRGB(SetRGB(rgb))
}

// PickSwatch applies a palette color
func (c *Controller) PickSwatch(hex string) error {
	return c.UpdateFromHex(hex)
}

// PickGradient moves the cursor to (x, y) on the gradient of the current
// hue. Coordinates outside [0, 1] are clamped to the edge.
func (c *Controller) PickGradient(x, y float64) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	x = conv.ClampFloat(x, 0, 1)
	y = conv.ClampFloat(y, 0, 1)
	return c.fromGradient(c.hue, x*100, 100-y*100, nil)
}

// SetHue selects the gradient of the given hue and keeps the cursor where
// it is
func (c *Controller) SetHue(hue int) error {
	if !c.begin() {
		return ErrBusy
	}
	defer c.end()

	var notes []string
	hue = Set(hue).resolve("Hue", c.hue, 0, 360, &notes)
	return c.fromGradient(hue, c.saturation, c.lightness, notes)
}

func (c *Controller) fromGradient(hue int, saturation, lightness float64, notes []string) error {
	rgb, err := GradientAt(hue, saturation, lightness)
	if err != nil {
		return c.fail(err)
	}
	next, err := fromRGB(rgb)
	if err != nil {
		return c.fail(err)
	}
	c.hue = hue
	c.saturation = saturation
	c.lightness = lightness
	c.commit(next, notes)
	return nil
}

// Warn shows a warning without changing the color
func (c *Controller) Warn(message string) {
	c.warning.show(c.view, message)
}

// ExpireWarning hides the warning immediately
func (c *Controller) ExpireWarning() {
	c.warning.hide(c.view)
}

func (c *Controller) follow(hls conv.HLS) {
	c.hue = hls.H
	c.saturation = float64(hls.S)
	c.lightness = float64(hls.L)
}

func (c *Controller) commit(next Color, notes []string) {
	c.color = next
	c.view.ShowGradient(c.hue)
	c.view.MoveCursor(c.Cursor())
	c.view.ShowRGB(next.RGB)
	c.view.ShowCMYK(next.CMYK)
	c.view.ShowHLS(next.HLS)
	c.view.ShowHex(next.Hex)
	c.view.ShowPreview(NewPreview(next.RGB))
	if len(notes) > 0 {
		c.warning.show(c.view, strings.Join(notes, ", "))
	} else {
		c.warning.hide(c.view)
	}
}

func (c *Controller) fail(err error) error {
	astilog.Debugf("rejected update: %v", err)
	c.warning.show(c.view, err.Error())
	return err
}

// fromRGB derives every model from a valid RGB color
func fromRGB(rgb conv.RGB) (Color, error) {
	cmyk, err := conv.RGBToCMYK(rgb.R, rgb.G, rgb.B)
	if err != nil {
		return Color{}, errors.Wrap(err, "cmyk")
	}
	hls, err := conv.RGBToHLS(rgb.R, rgb.G, rgb.B)
	if err != nil {
		return Color{}, errors.Wrap(err, "hls")
	}
	hex, err := conv.RGBToHex(rgb.R, rgb.G, rgb.B)
	if err != nil {
		return Color{}, errors.Wrap(err, "hex")
	}
	return Color{
		RGB:  rgb,
		CMYK: cmyk,
		HLS:  hls,
		HSV:  conv.RGBToHSV(rgb.R, rgb.G, rgb.B),
		Hex:  hex}, nil
}

// CheckColorBounds clamps each channel of a converted color to [0, 255] and
// returns a note for every channel that had to be clamped
func CheckColorBounds(rgb conv.RGB) (conv.RGB, []string) {
	var notes []string
	check := func(name string, v int) int {
		clamped := conv.Clamp(v, 0, 255)
		if clamped != v {
			notes = append(notes, fmt.Sprintf("%s value clamped to %d", name, clamped))
		}
		return clamped
	}
	return conv.RGB{
		R: check("R", rgb.R),
		G: check("G", rgb.G),
		B: check("B", rgb.B)}, notes
}
