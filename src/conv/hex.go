package conv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// RGBToHex returns the uppercase #RRGGBB form of an RGB triple
func RGBToHex(r, g, b int) (string, error) {
	if err := checkRGB(r, g, b); err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
}

// HexToRGB parses RRGGBB with an optional leading #. Case is ignored.
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, &FormatError{Input: hex, Reason: "HEX color must be 6 characters long"}
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Input: hex, Reason: "Invalid HEX color format"}
		}
		channels[i] = int(v)
	}
	return RGB{channels[0], channels[1], channels[2]}, nil
}

// IsValidHex returns true if hex is six hex digits with an optional
// leading #
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// NormalizeHex returns the canonical uppercase #RRGGBB form of a valid HEX
// string
func NormalizeHex(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}
