// Package conv converts colors between the RGB, CMYK, HLS, HSV and HEX
// models. Every function is pure; a conversion either returns a complete
// result or an error, never a partially filled one.
package conv

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is an 8-bit sRGB triple, each channel in [0, 255]
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// CMYK holds percentages in [0, 100]
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// HLS holds hue in degrees [0, 360) and lightness and saturation in
// percent [0, 100]
type HLS struct {
	H int `json:"h"`
	L int `json:"l"`
	S int `json:"s"`
}

// HSV holds hue in degrees [0, 360) and saturation and value in percent
// [0, 100]
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

// Pure colors
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// Valid returns true if every channel is within [0, 255]
func (c RGB) Valid() bool {
	return checkRGB(c.R, c.G, c.B) == nil
}

// Hex returns the #RRGGBB form of the color. Out-of-range channels are
// clamped.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		Clamp(c.R, 0, 255), Clamp(c.G, 0, 255), Clamp(c.B, 0, 255))
}

// Color returns the opaque image/color equivalent
func (c RGB) Color() color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(c.R, 0, 255)),
		G: uint8(Clamp(c.G, 0, 255)),
		B: uint8(Clamp(c.B, 0, 255)),
		A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d,%d,%d,%d)", c.C, c.M, c.Y, c.K)
}

func (c HLS) String() string {
	return fmt.Sprintf("hls(%d,%d,%d)", c.H, c.L, c.S)
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d,%d,%d)", c.H, c.S, c.V)
}

// Clamp limits v to [min, max]
func Clamp(v, min, max int) int {
	if v < min {
		v = min
	}
	if v > max {
		return max
	}
	return v
}

// ClampFloat limits v to [min, max]
func ClampFloat(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}

// round rounds half up
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func checkRGB(r, g, b int) error {
	for _, ch := range []struct {
		name  string
		value int
	}{{"R", r}, {"G", g}, {"B", b}} {
		if ch.value < 0 || ch.value > 255 {
			return rgbRangeError(ch.name, float64(ch.value))
		}
	}
	return nil
}

func clampRGB(c RGB) RGB {
	return RGB{Clamp(c.R, 0, 255), Clamp(c.G, 0, 255), Clamp(c.B, 0, 255)}
}
