package colorpicker

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"math"
	"runtime"
	"sync"

	"github.com/asticode/go-astilog"
	"github.com/junegunn/colorpicker/src/conv"
	"github.com/junegunn/colorpicker/src/util"
	"github.com/pkg/errors"
)

/*
The gradient of a hue is the square of its saturation (x, left to right) and
lightness (y, top to bottom):

  (0, 0)  white ........ pure hue at 100% lightness (white)
     :                           :
  (0, 1)  black ........ black
*/

// GradientAt returns the color at the given saturation and lightness on the
// gradient of the given hue. Saturation and lightness are in [0, 100].
func GradientAt(hue int, saturation, lightness float64) (conv.RGB, error) {
	r, g, b, err := conv.HLSFloatToRGB(float64(hue), lightness, saturation)
	if err != nil {
		return conv.RGB{}, err
	}
	return conv.RGB{
		R: conv.Clamp(int(math.Floor(r+0.5)), 0, 255),
		G: conv.Clamp(int(math.Floor(g+0.5)), 0, 255),
		B: conv.Clamp(int(math.Floor(b+0.5)), 0, 255)}, nil
}

// RenderGradient returns a width x height image of the gradient
func RenderGradient(hue int, width int, height int) *image.RGBA {
	img, _ := renderGradient(hue, width, height, nil)
	return img
}

func gradientPartitions(height int) int {
	partitions := util.Constrain(runtime.NumCPU(), gradientMinPartitions, gradientMaxPartitions)
	return util.Constrain(partitions, 1, util.Max(height, 1))
}

// renderGradient splits the rows into partitions drawn in parallel. Each
// partition checks the cancel flag before every row.
func renderGradient(hue int, width int, height int, cancelled *util.AtomicBool) (*image.RGBA, bool) {
	img := image.NewRGBA(image.Rect(0, 0, util.Max(width, 0), util.Max(height, 0)))
	if width <= 0 || height <= 0 {
		return img, false
	}

	partitions := gradientPartitions(height)
	perSlice := height / partitions
	waitGroup := sync.WaitGroup{}
	for i := 0; i < partitions; i++ {
		start := i * perSlice
		end := start + perSlice
		if i == partitions-1 {
			end = height
		}
		waitGroup.Add(1)
		go func(start int, end int) {
			defer waitGroup.Done()
			for y := start; y < end; y++ {
				if cancelled != nil && cancelled.Get() {
					return
				}
				lightness := 100 - float64(y)/float64(height)*100
				for x := 0; x < width; x++ {
					rgb, err := GradientAt(hue, float64(x)/float64(width)*100, lightness)
					if err != nil {
						rgb = conv.Black
					}
					img.SetRGBA(x, y, rgb.Color())
				}
			}
		}(start, end)
	}
	waitGroup.Wait()
	return img, cancelled != nil && cancelled.Get()
}

// GradientDataURL encodes a gradient image as a PNG data URL
func GradientDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "encoding gradient failed")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// GradientRequest describes an image to paint
type GradientRequest struct {
	Hue    int
	Width  int
	Height int
}

const (
	reqPaint util.EventType = iota
	reqStop
)

// Painter renders gradients in the background. A request cancels the one
// being rendered, and requests made in quick succession collapse into the
// latest one.
type Painter struct {
	reqBox    *util.EventBox
	cancelled *util.AtomicBool
	callback  func(GradientRequest, *image.RGBA) error
	last      *GradientRequest
}

// NewPainter returns a Painter that hands every finished image to callback.
// The callback runs on the goroutine of Loop. A request equal to the last
// one delivered without error is not painted again.
func NewPainter(callback func(GradientRequest, *image.RGBA) error) *Painter {
	return &Painter{
		reqBox:    util.NewEventBox(),
		cancelled: util.NewAtomicBool(false),
		callback:  callback}
}

// Request asks for the gradient of hue at the given size
func (p *Painter) Request(hue int, width int, height int) {
	p.cancelled.Set(true)
	p.reqBox.Set(reqPaint, GradientRequest{hue, width, height})
}

// Stop terminates Loop
func (p *Painter) Stop() {
	p.cancelled.Set(true)
	p.reqBox.Set(reqStop, nil)
}

// Loop paints requests until Stop is called
func (p *Painter) Loop() {
	for {
		var request *GradientRequest
		stop := false
		p.reqBox.Wait(func(events *util.Events) {
			for evt, val := range *events {
				switch evt {
				case reqPaint:
					req := val.(GradientRequest)
					request = &req
				case reqStop:
					stop = true
				}
			}
			events.Clear()
		})
		if stop {
			return
		}
		if request == nil || p.last != nil && *p.last == *request {
			continue
		}

		p.cancelled.Set(false)
		img, cancelled := renderGradient(request.Hue, request.Width, request.Height, p.cancelled)
		if cancelled {
			astilog.Debugf("gradient of hue %d cancelled", request.Hue)
			continue
		}
		if err := p.callback(*request, img); err != nil {
			astilog.Debugf("gradient of hue %d not delivered: %v", request.Hue, err)
			p.last = nil
			continue
		}
		p.last = request
	}
}
