package tui

import "testing"

func TestHexToColor(t *testing.T) {
	assert := func(expr string, r, g, b int) {
		color := HexToColor(expr)
		cr, cg, cb := color.RGB()
		if !color.is24() || cr != r || cg != g || cb != b {
			t.Errorf("%s: %d %d %d", expr, cr, cg, cb)
		}
	}

	assert("#ff0000", 255, 0, 0)
	assert("#010203", 1, 2, 3)
	assert("#102030", 16, 32, 48)
	assert("#ffffff", 255, 255, 255)
	assert("#000000", 0, 0, 0)

	for _, invalid := range []string{"", "ff0000", "#fff", "#gggggg"} {
		if !HexToColor(invalid).IsDefault() {
			t.Errorf("%q should be the default color", invalid)
		}
	}
}

func TestNewColor(t *testing.T) {
	if NewColor(1, 2, 3) != HexToColor("#010203") {
		t.Error("color mismatch")
	}
	if NewColor(0, 0, 0).IsDefault() || !NewColor(0, 0, 0).is24() {
		t.Error("black is not the default color")
	}
}
