package conv

import "math"

// RGBToHLS converts an RGB triple to hue, lightness and saturation
func RGBToHLS(r, g, b int) (HLS, error) {
	if err := checkRGB(r, g, b); err != nil {
		return HLS{}, err
	}

	rn := float64(r) / 255
	gn := float64(g) / 255
	bn := float64(b) / 255

	max := math.Max(rn, math.Max(gn, bn))
	min := math.Min(rn, math.Min(gn, bn))
	l := (max + min) / 2

	if max == min {
		// Achromatic
		return HLS{0, round(l * 100), 0}, nil
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	return HLS{wrapHue(round(hueOf(rn, gn, bn, max, d) * 360)), round(l * 100), round(s * 100)}, nil
}

// hueOf returns the hue in [0, 1). The first channel equal to max wins, in
// R, G, B order.
func hueOf(r, g, b, max, d float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

func wrapHue(h int) int {
	if h >= 360 {
		return h - 360
	}
	return h
}

// HLSFloatToRGB converts fractional hue, lightness and saturation to RGB
// without clamping or rounding. Channels are on the 0-255 scale.
func HLSFloatToRGB(h, l, s float64) (r, g, b float64, err error) {
	if h < 0 || h > 360 {
		return 0, 0, 0, hlsRangeError("H", h)
	}
	if l < 0 || l > 100 {
		return 0, 0, 0, hlsRangeError("L", l)
	}
	if s < 0 || s > 100 {
		return 0, 0, 0, hlsRangeError("S", s)
	}

	hn := h / 360
	ln := l / 100
	sn := s / 100

	if sn == 0 {
		return ln * 255, ln * 255, ln * 255, nil
	}

	var q float64
	if ln < 0.5 {
		q = ln * (1 + sn)
	} else {
		q = ln + sn - ln*sn
	}
	p := 2*ln - q

	r = hueToChannel(p, q, hn+1.0/3) * 255
	g = hueToChannel(p, q, hn) * 255
	b = hueToChannel(p, q, hn-1.0/3) * 255
	return r, g, b, nil
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HLSToRGBUnclamped converts HLS to a rounded RGB triple that is not yet
// clamped to [0, 255]
func HLSToRGBUnclamped(h, l, s int) (RGB, error) {
	r, g, b, err := HLSFloatToRGB(float64(h), float64(l), float64(s))
	if err != nil {
		return RGB{}, err
	}
	return RGB{round(r), round(g), round(b)}, nil
}

// HLSToRGB converts hue, lightness and saturation to an RGB triple
func HLSToRGB(h, l, s int) (RGB, error) {
	raw, err := HLSToRGBUnclamped(h, l, s)
	if err != nil {
		return RGB{}, err
	}
	return clampRGB(raw), nil
}
