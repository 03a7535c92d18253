package conv

import "math"

// Luminance returns the relative luminance of an sRGB color in [0, 1]
func Luminance(r, g, b int) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(v int) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// TextColor returns black for light backgrounds and white for dark ones.
// This is a plain luminance threshold, not a contrast ratio.
func TextColor(r, g, b int) string {
	if Luminance(r, g, b) > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}
