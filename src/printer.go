package colorpicker

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/junegunn/colorpicker/src/conv"
	"github.com/muesli/termenv"
	xterm "golang.org/x/crypto/ssh/terminal"
)

const (
	defaultReportWidth = 40
	maxReportWidth     = 80
)

// printer writes colors to the standard output. Swatches are only drawn
// when the profile supports colors.
type printer struct {
	out   *termenv.Output
	width int
}

func newPrinter(w io.Writer, profile termenv.Profile, width int) *printer {
	return &printer{out: termenv.NewOutput(w, termenv.WithProfile(profile)), width: width}
}

// newStdoutPrinter returns a printer for the standard output with the color
// profile and width of the terminal
func newStdoutPrinter() *printer {
	width := defaultReportWidth
	if w, _, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	out := termenv.NewOutput(os.Stdout)
	return newPrinter(os.Stdout, out.Profile, width)
}

func formatColor(c Color, format string) string {
	switch format {
	case formatRGB:
		return c.RGB.String()
	case formatCMYK:
		return c.CMYK.String()
	case formatHLS:
		return c.HLS.String()
	case formatHSV:
		return c.HSV.String()
	case formatAll:
		return strings.Join([]string{c.Hex, c.RGB.String(), c.CMYK.String(), c.HLS.String(), c.HSV.String()}, "\n")
	}
	return c.Hex
}

func (p *printer) swatch(c Color, width int) string {
	style := p.out.String(strings.Repeat(" ", width)).
		Background(p.out.Color(c.Hex))
	return style.String()
}

// printColor prints the accepted color in the format
func (p *printer) printColor(c Color, format string) {
	fmt.Fprintln(p.out, formatColor(c, format))
}

// printReport prints the color in every model along with its luminance and
// the text color that reads on it
func (p *printer) printReport(c Color) {
	if p.out.Profile != termenv.Ascii {
		width := p.width
		if width <= 0 {
			width = defaultReportWidth
		}
		if width > maxReportWidth {
			width = maxReportWidth
		}
		fmt.Fprintln(p.out, p.swatch(c, width))
	}
	rows := [][2]string{
		{"HEX", c.Hex},
		{"RGB", c.RGB.String()},
		{"CMYK", c.CMYK.String()},
		{"HLS", c.HLS.String()},
		{"HSV", c.HSV.String()},
		{"Luminance", fmt.Sprintf("%.4f", conv.Luminance(c.RGB.R, c.RGB.G, c.RGB.B))},
		{"Text", conv.TextColor(c.RGB.R, c.RGB.G, c.RGB.B)},
	}
	for _, row := range rows {
		fmt.Fprintf(p.out, "%-10s %s\n", row[0], row[1])
	}
}

// convert parses the color and prints the report
func (p *printer) convert(str string) error {
	rgb, err := conv.ParseColor(str)
	if err != nil {
		return err
	}
	c, err := fromRGB(rgb)
	if err != nil {
		return err
	}
	p.printReport(c)
	return nil
}
