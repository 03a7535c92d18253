package colorpicker

import (
	"os"
	"sort"
	"strings"

	"github.com/asticode/go-astilog"
	"github.com/junegunn/colorpicker/src/conv"
	"github.com/junegunn/colorpicker/src/util"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Category is a named list of swatches
type Category struct {
	Name   string   `toml:"name" json:"name"`
	Colors []string `toml:"colors" json:"colors"`
}

type paletteFile struct {
	Categories []Category `toml:"category"`
}

const generatedSwatches = 18

var builtinCategories = []Category{
	{"basic", []string{
		"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#00FFFF", "#FF00FF",
		"#FFA500", "#800080", "#FFC0CB", "#A52A2A", "#000000", "#FFFFFF",
		"#808080", "#C0C0C0", "#800000", "#008000", "#000080", "#808000"}},
	{"pastel", []string{
		"#FFB6C1", "#FFD700", "#98FB98", "#87CEFA", "#DDA0DD", "#FFA07A",
		"#F0E68C", "#E6E6FA", "#FFF0F5", "#F5F5DC", "#F0FFF0", "#F0F8FF",
		"#F5F5F5", "#FFF5EE", "#FAEBD7", "#FFEFD5", "#FFE4E1", "#E0FFFF"}},
	{"vibrant", []string{
		"#FF4500", "#DA70D6", "#00FA9A", "#1E90FF", "#FFD700", "#FF69B4",
		"#7CFC00", "#FF6347", "#00CED1", "#FF8C00", "#8A2BE2", "#32CD32",
		"#DC143C", "#00BFFF", "#FF1493", "#7B68EE", "#ADFF2F", "#FF00FF"}},
}

var generators = []struct {
	name string
	fn   func(int) ([]colorful.Color, error)
}{
	{"warm", colorful.WarmPalette},
	{"happy", colorful.HappyPalette},
	{"soft", colorful.SoftPalette},
}

// Palette is the list of swatch categories with one of them selected
type Palette struct {
	categories []Category
	current    int
}

// NewPalette returns the built-in and generated categories followed by the
// given ones. A category with the name of an existing one replaces it.
func NewPalette(extra []Category) *Palette {
	p := &Palette{}
	for _, category := range builtinCategories {
		p.add(category)
	}
	for _, gen := range generators {
		category, err := generateCategory(gen.name, gen.fn)
		if err != nil {
			astilog.Errorf("cannot generate %s palette: %v", gen.name, err)
			continue
		}
		p.add(category)
	}
	for _, category := range extra {
		p.add(category)
	}
	return p
}

func (p *Palette) add(category Category) {
	for idx, c := range p.categories {
		if c.Name == category.Name {
			p.categories[idx] = category
			return
		}
	}
	p.categories = append(p.categories, category)
}

// generateCategory sorts the generated colors by hue so that the swatches
// read as a spectrum
func generateCategory(name string, fn func(int) ([]colorful.Color, error)) (Category, error) {
	colors, err := fn(generatedSwatches)
	if err != nil {
		return Category{}, err
	}
	sort.Slice(colors, func(i, j int) bool {
		hi, _, _ := colors[i].Hsl()
		hj, _, _ := colors[j].Hsl()
		return hi < hj
	})
	category := Category{Name: name}
	for _, color := range colors {
		category.Colors = append(category.Colors, strings.ToUpper(color.Clamped().Hex()))
	}
	return category, nil
}

// Names returns the names of the categories in order
func (p *Palette) Names() []string {
	names := make([]string, len(p.categories))
	for idx, c := range p.categories {
		names[idx] = c.Name
	}
	return names
}

// Current returns the selected category
func (p *Palette) Current() Category {
	return p.categories[p.current]
}

// Select selects the category of the given name
func (p *Palette) Select(name string) error {
	for idx, c := range p.categories {
		if c.Name == name {
			p.current = idx
			return nil
		}
	}
	return errors.Errorf("unknown palette: %s (available: %s)", name, strings.Join(p.Names(), ", "))
}

// Cycle moves the selection by delta, wrapping around
func (p *Palette) Cycle(delta int) Category {
	p.current = util.Cycle(p.current, delta, len(p.categories))
	return p.Current()
}

// Nearest returns the index of the swatch of the current category closest
// to rgb in CIE Lab, and whether it is an exact match
func (p *Palette) Nearest(rgb conv.RGB) (int, bool) {
	target := toColorful(rgb)
	nearest := -1
	distance := 0.0
	for idx, hex := range p.Current().Colors {
		swatch, err := conv.HexToRGB(hex)
		if err != nil {
			continue
		}
		if swatch == rgb {
			return idx, true
		}
		if d := target.DistanceLab(toColorful(swatch)); nearest < 0 || d < distance {
			nearest = idx
			distance = d
		}
	}
	return nearest, false
}

func toColorful(rgb conv.RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255}
}

// LoadPaletteFile reads categories from a TOML file of the form
//
//	[[category]]
//	name = "brand"
//	colors = ["#1E90FF", "#FF4500"]
func LoadPaletteFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read palette file")
	}
	return parsePalette(data)
}

func parsePalette(data []byte) ([]Category, error) {
	var file paletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "invalid palette file")
	}
	for idx, category := range file.Categories {
		if len(category.Name) == 0 {
			return nil, errors.Errorf("palette category #%d has no name", idx+1)
		}
		if len(category.Colors) == 0 {
			return nil, errors.Errorf("palette category %s has no colors", category.Name)
		}
		for i, color := range category.Colors {
			hex, err := conv.NormalizeHex(color)
			if err != nil {
				return nil, errors.Wrapf(err, "palette category %s", category.Name)
			}
			category.Colors[i] = hex
		}
	}
	return file.Categories, nil
}
