package conv

import "math"

// RGBToCMYK converts an RGB triple to CMYK percentages
func RGBToCMYK(r, g, b int) (CMYK, error) {
	if err := checkRGB(r, g, b); err != nil {
		return CMYK{}, err
	}

	rn := float64(r) / 255
	gn := float64(g) / 255
	bn := float64(b) / 255

	k := 1 - math.Max(rn, math.Max(gn, bn))
	if k == 1 {
		// Pure black; 1 - k would be zero below
		return CMYK{0, 0, 0, 100}, nil
	}

	c := (1 - rn - k) / (1 - k)
	m := (1 - gn - k) / (1 - k)
	y := (1 - bn - k) / (1 - k)
	return CMYK{round(c * 100), round(m * 100), round(y * 100), round(k * 100)}, nil
}

// CMYKToRGBUnclamped converts CMYK percentages to RGB without clamping the
// rounded result
func CMYKToRGBUnclamped(c, m, y, k int) (RGB, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"C", c}, {"M", m}, {"Y", y}, {"K", k}} {
		if ch.value < 0 || ch.value > 100 {
			return RGB{}, cmykRangeError(ch.name, float64(ch.value))
		}
	}

	kn := float64(k) / 100
	r := 255 * (1 - float64(c)/100) * (1 - kn)
	g := 255 * (1 - float64(m)/100) * (1 - kn)
	b := 255 * (1 - float64(y)/100) * (1 - kn)
	return RGB{round(r), round(g), round(b)}, nil
}

// CMYKToRGB converts CMYK percentages to RGB. Channels are clamped to
// [0, 255] after rounding.
func CMYKToRGB(c, m, y, k int) (RGB, error) {
	raw, err := CMYKToRGBUnclamped(c, m, y, k)
	if err != nil {
		return RGB{}, err
	}
	return clampRGB(raw), nil
}
