package conv

import "math"

// HSVToRGB converts hue, saturation and value to RGB. Unlike the HLS path
// it never fails: hue is wrapped into [0, 360) and saturation and value are
// clamped into [0, 100].
func HSVToRGB(h, s, v int) RGB {
	return HSVFloatToRGB(float64(h), float64(s), float64(v))
}

// HSVFloatToRGB is HSVToRGB for fractional input
func HSVFloatToRGB(h, s, v float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = ClampFloat(s, 0, 100) / 100
	v = ClampFloat(v, 0, 100) / 100

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{round((r + m) * 255), round((g + m) * 255), round((b + m) * 255)}
}

// RGBToHSV converts an RGB triple to hue, saturation and value. Channels
// are clamped into [0, 255] first.
func RGBToHSV(r, g, b int) HSV {
	rn := float64(Clamp(r, 0, 255)) / 255
	gn := float64(Clamp(g, 0, 255)) / 255
	bn := float64(Clamp(b, 0, 255)) / 255

	max := math.Max(rn, math.Max(gn, bn))
	min := math.Min(rn, math.Min(gn, bn))
	d := max - min

	s := 0.0
	if max != 0 {
		s = d / max
	}

	h := 0.0
	if d != 0 {
		h = hueOf(rn, gn, bn, max, d)
	}
	return HSV{wrapHue(round(h * 360)), round(s * 100), round(max * 100)}
}
