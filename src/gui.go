package colorpicker

import (
	_ "embed"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/asticode/go-astilectron"
	"github.com/asticode/go-astilectron-bootstrap"
	"github.com/asticode/go-astilog"
	"github.com/junegunn/colorpicker/src/conv"
	"github.com/pkg/errors"
)

//go:embed resources/app/index.html
var indexHTML []byte

// guiState is the payload of the display message
type guiState struct {
	Color    Color      `json:"color"`
	Preview  Preview    `json:"preview"`
	Hue      int        `json:"hue"`
	Cursor   [2]float64 `json:"cursor"`
	Warning  string     `json:"warning"`
	Palette  string     `json:"palette"`
	Swatches []string   `json:"swatches"`
	Active   int        `json:"active"`
	Palettes []string   `json:"palettes"`
}

type gradientPayload struct {
	Hue int    `json:"hue"`
	URL string `json:"url"`
}

// GUI is the View of the desktop window. The page receives the whole state
// after every list of actions, and the gradient image whenever the hue
// changes.
type GUI struct {
	mutex   sync.Mutex
	post    func(...*action) bool
	state   guiState
	window  *astilectron.Window
	app     *astilectron.Astilectron
	painter *Painter
	width   int
	height  int
	send    func(name string, payload interface{}) error
}

// NewGUI returns a GUI. post hands the actions made from the messages of the
// page to the Loop.
func NewGUI(palettes []string, post func(...*action) bool) *GUI {
	g := &GUI{
		post:   post,
		state:  guiState{Active: -1, Palettes: palettes},
		width:  gradientWidth,
		height: gradientHeight}
	g.send = g.sendMessage
	g.painter = NewPainter(g.paint)
	return g
}

func (g *GUI) sendMessage(name string, payload interface{}) error {
	g.mutex.Lock()
	w := g.window
	g.mutex.Unlock()
	if w == nil {
		return errors.New("window not ready")
	}
	return bootstrap.SendMessage(w, name, payload)
}

func (g *GUI) ShowRGB(rgb conv.RGB) {
	g.mutex.Lock()
	g.state.Color.RGB = rgb
	g.mutex.Unlock()
}

func (g *GUI) ShowCMYK(cmyk conv.CMYK) {
	g.mutex.Lock()
	g.state.Color.CMYK = cmyk
	g.mutex.Unlock()
}

func (g *GUI) ShowHLS(hls conv.HLS) {
	g.mutex.Lock()
	g.state.Color.HLS = hls
	g.mutex.Unlock()
}

func (g *GUI) ShowHex(hex string) {
	g.mutex.Lock()
	g.state.Color.Hex = hex
	g.mutex.Unlock()
}

func (g *GUI) ShowPreview(preview Preview) {
	g.mutex.Lock()
	g.state.Preview = preview
	g.mutex.Unlock()
}

// ShowGradient asks the Painter for the gradient of the hue. Repeated
// requests for the same hue and size are not painted again.
func (g *GUI) ShowGradient(hue int) {
	g.mutex.Lock()
	g.state.Hue = hue
	width, height := g.width, g.height
	g.mutex.Unlock()
	g.painter.Request(hue, width, height)
}

func (g *GUI) MoveCursor(x, y float64) {
	g.mutex.Lock()
	g.state.Cursor = [2]float64{x, y}
	g.mutex.Unlock()
}

func (g *GUI) ShowWarning(message string) {
	g.mutex.Lock()
	g.state.Warning = message
	g.mutex.Unlock()
}

func (g *GUI) HideWarning() {
	g.mutex.Lock()
	g.state.Warning = ""
	g.mutex.Unlock()
}

// ShowPalette implements PaletteView
func (g *GUI) ShowPalette(category Category, active int) {
	g.mutex.Lock()
	g.state.Palette = category.Name
	g.state.Swatches = category.Colors
	g.state.Active = active
	g.mutex.Unlock()
}

// Flush sends the state to the page. The state is dropped until the window
// is ready; the page asks for it once loaded.
func (g *GUI) Flush() {
	g.mutex.Lock()
	state := g.state
	state.Color.HSV = conv.RGBToHSV(state.Color.RGB.R, state.Color.RGB.G, state.Color.RGB.B)
	g.mutex.Unlock()

	if err := g.send(msgDisplay, state); err != nil {
		astilog.Debugf("display not sent: %v", err)
	}
}

// resize changes the size of the gradient image and paints it again
func (g *GUI) resize(width int, height int) {
	g.mutex.Lock()
	g.width, g.height = width, height
	hue := g.state.Hue
	g.mutex.Unlock()
	g.painter.Request(hue, width, height)
}

func (g *GUI) paint(request GradientRequest, img *image.RGBA) error {
	url, err := GradientDataURL(img)
	if err != nil {
		astilog.Error(errors.Wrap(err, "encoding gradient failed"))
		return err
	}
	return g.send(msgGradient, gradientPayload{request.Hue, url})
}

// Run opens the window and blocks until it is closed
func (g *GUI) Run(appName string, debug bool) error {
	dir, err := os.MkdirTemp("", "colorpicker")
	if err != nil {
		return errors.Wrap(err, "creating resources failed")
	}
	defer os.RemoveAll(dir)
	homepage := filepath.Join(dir, "index.html")
	if err := os.WriteFile(homepage, indexHTML, 0600); err != nil {
		return errors.Wrap(err, "creating resources failed")
	}

	go g.painter.Loop()
	defer g.painter.Stop()

	if err := bootstrap.Run(bootstrap.Options{
		AstilectronOptions: astilectron.Options{
			AppName: appName,
		},
		Debug: debug,
		OnWait: func(a *astilectron.Astilectron, iw []*astilectron.Window, _ *astilectron.Menu, _ *astilectron.Tray, _ *astilectron.Menu) error {
			g.mutex.Lock()
			g.app = a
			g.window = iw[0]
			g.mutex.Unlock()
			return nil
		},
		Windows: []*bootstrap.Window{{
			Homepage:       homepage,
			MessageHandler: g.handleMessages,
			Options: &astilectron.WindowOptions{
				BackgroundColor: astilectron.PtrStr("#333"),
				Center:          astilectron.PtrBool(true),
				Height:          astilectron.PtrInt(800),
				Width:           astilectron.PtrInt(760),
			},
		}},
	}); err != nil {
		return errors.Wrap(err, "running bootstrap failed")
	}
	return nil
}

// Close closes the window if it is open
func (g *GUI) Close() {
	g.mutex.Lock()
	app := g.app
	g.app = nil
	g.window = nil
	g.mutex.Unlock()
	if app != nil {
		app.Stop()
	}
}
