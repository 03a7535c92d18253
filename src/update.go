package colorpicker

import (
	"fmt"

	"github.com/junegunn/colorpicker/src/conv"
	"github.com/junegunn/colorpicker/src/util"
)

// Field is one channel of a partial update. The zero value is Keep, which
// leaves the channel at its current value.
type Field struct {
	value int
	set   bool
}

// Keep leaves a channel unchanged
var Keep = Field{}

// Set returns a Field that sets a channel to v
func Set(v int) Field {
	return Field{value: v, set: true}
}

// IsSet returns true unless the field is Keep
func (f Field) IsSet() bool {
	return f.set
}

// Value returns the value of a set field
func (f Field) Value() int {
	return f.value
}

func (f Field) String() string {
	if !f.set {
		return "_"
	}
	return fmt.Sprint(f.value)
}

// resolve returns the current value for Keep, or the set value clamped to
// [min, max]. Clamping is reported to notes.
func (f Field) resolve(name string, current int, min int, max int, notes *[]string) int {
	if !f.set {
		return current
	}
	v := util.Constrain(f.value, min, max)
	if v != f.value {
		*notes = append(*notes, fmt.Sprintf("%s value clamped to %d", name, v))
	}
	return v
}

// RGBUpdate is a partial update of the RGB channels
type RGBUpdate struct {
	R, G, B Field
}

// CMYKUpdate is a partial update of the CMYK channels
type CMYKUpdate struct {
	C, M, Y, K Field
}

// HLSUpdate is a partial update of the HLS channels
type HLSUpdate struct {
	H, L, S Field
}

// HSVUpdate is a partial update of the HSV channels
type HSVUpdate struct {
	H, S, V Field
}

// SetRGB returns an update that replaces all RGB channels
func SetRGB(rgb conv.RGB) RGBUpdate {
	return RGBUpdate{Set(rgb.R), Set(rgb.G), Set(rgb.B)}
}

// SetCMYK returns an update that replaces all CMYK channels
func SetCMYK(cmyk conv.CMYK) CMYKUpdate {
	return CMYKUpdate{Set(cmyk.C), Set(cmyk.M), Set(cmyk.Y), Set(cmyk.K)}
}

// SetHLS returns an update that replaces all HLS channels
func SetHLS(hls conv.HLS) HLSUpdate {
	return HLSUpdate{Set(hls.H), Set(hls.L), Set(hls.S)}
}
