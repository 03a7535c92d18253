package conv

import (
	"testing"
)

// Percent and degree units are integers, so a round trip through CMYK, HLS
// or HSV can move a channel by more than one level. The bounds below are the
// worst cases over the grid.
const (
	cmykTolerance = 2
	hlsTolerance  = 3
	hsvTolerance  = 3
)

func distance(a, b RGB) int {
	max := 0
	for _, d := range []int{a.R - b.R, a.G - b.G, a.B - b.B} {
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

type roundTrip struct {
	name      string
	tolerance int
	fn        func(RGB) (RGB, error)
}

var roundTrips = []roundTrip{
	{"cmyk", cmykTolerance, func(c RGB) (RGB, error) {
		cmyk, err := RGBToCMYK(c.R, c.G, c.B)
		if err != nil {
			return RGB{}, err
		}
		return CMYKToRGB(cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	}},
	{"hls", hlsTolerance, func(c RGB) (RGB, error) {
		hls, err := RGBToHLS(c.R, c.G, c.B)
		if err != nil {
			return RGB{}, err
		}
		return HLSToRGB(hls.H, hls.L, hls.S)
	}},
	{"hsv", hsvTolerance, func(c RGB) (RGB, error) {
		hsv := RGBToHSV(c.R, c.G, c.B)
		return HSVToRGB(hsv.H, hsv.S, hsv.V), nil
	}},
}

func TestRoundTrip(t *testing.T) {
	for _, rt := range roundTrips {
		worst := 0
		for r := 0; r < 256; r += 5 {
			for g := 0; g < 256; g += 5 {
				for b := 0; b < 256; b += 5 {
					from := RGB{r, g, b}
					once, err := rt.fn(from)
					if err != nil {
						t.Fatalf("%s: %v: %v", rt.name, from, err)
					}
					if !once.Valid() {
						t.Fatalf("%s: %v produced %v", rt.name, from, once)
					}
					if d := distance(from, once); d > worst {
						worst = d
					}

					// Converting the result again stays within the same bound
					twice, err := rt.fn(once)
					if err != nil {
						t.Fatalf("%s: %v: %v", rt.name, once, err)
					}
					if d := distance(once, twice); d > rt.tolerance {
						t.Errorf("%s: %v -> %v -> %v", rt.name, from, once, twice)
					}
				}
			}
		}
		if worst > rt.tolerance {
			t.Errorf("%s: round trip error %d exceeds %d", rt.name, worst, rt.tolerance)
		}
	}
}

func TestRoundTripKnownColors(t *testing.T) {
	for _, rt := range roundTrips {
		for _, color := range []RGB{White, Black,
			{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
			{255, 255, 0}, {0, 255, 255}, {255, 0, 255}} {
			back, err := rt.fn(color)
			if err != nil {
				t.Error(err)
			}
			if back != color {
				t.Errorf("%s: %v -> %v", rt.name, color, back)
			}
		}
	}
}

func TestRoundTripWorstCases(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to RGB
	}{
		{"hls", RGB{0, 0, 125}, RGB{0, 0, 128}},
		{"hsv", RGB{0, 155, 200}, RGB{0, 152, 199}},
		{"cmyk", RGB{0, 95, 200}, RGB{0, 93, 199}},
	} {
		for _, rt := range roundTrips {
			if rt.name != tc.name {
				continue
			}
			back, _ := rt.fn(tc.from)
			if back != tc.to {
				t.Errorf("%s: %v -> %v, expected %v", rt.name, tc.from, back, tc.to)
			}
		}
	}
}
