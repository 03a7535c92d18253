package colorpicker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/junegunn/colorpicker/src/conv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteCategories(t *testing.T) {
	p := NewPalette(nil)
	names := p.Names()
	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, []string{"basic", "pastel", "vibrant"}, names[:3])
	assert.Equal(t, "basic", p.Current().Name)

	for _, name := range names {
		require.NoError(t, p.Select(name))
		category := p.Current()
		assert.Len(t, category.Colors, 18, name)
		for _, hex := range category.Colors {
			assert.True(t, conv.IsValidHex(hex), "%s: %s", name, hex)
			normalized, err := conv.NormalizeHex(hex)
			assert.NoError(t, err)
			assert.Equal(t, normalized, hex)
		}
	}

	err := p.Select("nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown palette: nope")
}

func TestPaletteCycle(t *testing.T) {
	p := NewPalette(nil)
	n := len(p.Names())
	assert.Equal(t, "pastel", p.Cycle(1).Name)
	assert.Equal(t, "basic", p.Cycle(-1).Name)
	assert.Equal(t, p.Names()[n-1], p.Cycle(-1).Name)
	assert.Equal(t, "basic", p.Cycle(1).Name)
}

func TestPaletteNearest(t *testing.T) {
	p := NewPalette(nil)

	idx, exact := p.Nearest(conv.RGB{R: 255, G: 0, B: 0})
	assert.Equal(t, 0, idx)
	assert.True(t, exact)

	idx, exact = p.Nearest(conv.RGB{R: 250, G: 5, B: 5})
	assert.Equal(t, 0, idx)
	assert.False(t, exact)

	idx, _ = p.Nearest(conv.RGB{R: 2, G: 2, B: 2})
	assert.Equal(t, "#000000", p.Current().Colors[idx])
}

func TestParsePalette(t *testing.T) {
	categories, err := parsePalette([]byte(`
[[category]]
name = "brand"
colors = ["#1e90ff", "FF4500"]

[[category]]
name = "basic"
colors = ["#123456"]
`))
	require.NoError(t, err)
	assert.Equal(t, []Category{
		{Name: "brand", Colors: []string{"#1E90FF", "#FF4500"}},
		{Name: "basic", Colors: []string{"#123456"}},
	}, categories)

	// User categories are appended or replace built-in ones
	p := NewPalette(categories)
	require.NoError(t, p.Select("basic"))
	assert.Equal(t, []string{"#123456"}, p.Current().Colors)
	assert.Equal(t, "brand", p.Names()[len(p.Names())-1])

	for _, invalid := range []string{
		`[[category]]
colors = ["#000000"]`,
		`[[category]]
name = "empty"`,
		`[[category]]
name = "bad"
colors = ["#GGGGGG"]`,
		`[[category]`,
	} {
		_, err := parsePalette([]byte(invalid))
		assert.Error(t, err, invalid)
	}
}

func TestLoadPaletteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[category]]\nname = \"mine\"\ncolors = [\"#010203\"]\n"), 0600))

	categories, err := LoadPaletteFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Category{{Name: "mine", Colors: []string{"#010203"}}}, categories)

	_, err = LoadPaletteFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
