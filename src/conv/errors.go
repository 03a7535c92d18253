package conv

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors matched by errors.Is
var (
	ErrRange  = errors.New("value out of range")
	ErrFormat = errors.New("malformed color")
)

// RangeError reports an input outside the legal range of its color model
type RangeError struct {
	Model   string
	Channel string
	Value   float64
	Min     float64
	Max     float64
	message string
}

func (e *RangeError) Error() string {
	if len(e.message) > 0 {
		return e.message
	}
	return fmt.Sprintf("%s values must be between %v and %v", e.Model, e.Min, e.Max)
}

// Is makes RangeError match ErrRange
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// FormatError reports a malformed HEX string or color expression
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// Is makes FormatError match ErrFormat
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func rgbRangeError(channel string, value float64) error {
	return &RangeError{
		Model:   "RGB",
		Channel: channel,
		Value:   value,
		Min:     0,
		Max:     255,
		message: "RGB values must be between 0 and 255"}
}

func cmykRangeError(channel string, value float64) error {
	return &RangeError{
		Model:   "CMYK",
		Channel: channel,
		Value:   value,
		Min:     0,
		Max:     100,
		message: "CMYK values must be between 0 and 100"}
}

func hlsRangeError(channel string, value float64) error {
	switch channel {
	case "H":
		return &RangeError{Model: "HLS", Channel: channel, Value: value, Min: 0, Max: 360,
			message: "Hue must be between 0 and 360"}
	case "L":
		return &RangeError{Model: "HLS", Channel: channel, Value: value, Min: 0, Max: 100,
			message: "Lightness must be between 0 and 100"}
	}
	return &RangeError{Model: "HLS", Channel: channel, Value: value, Min: 0, Max: 100,
		message: "Saturation must be between 0 and 100"}
}
