package colorpicker

import (
	"encoding/json"

	"github.com/asticode/go-astilectron"
	"github.com/asticode/go-astilectron-bootstrap"
	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// Messages sent to the page
const (
	msgDisplay  = "display"
	msgGradient = "gradient"
)

// Messages received from the page that are not actions
const (
	msgReady = "ready"
)

// modelKeys lists the payload keys of each color model in the order of the
// fields of its action
var modelKeys = map[string]struct {
	t    actionType
	keys []string
}{
	"rgb":  {actRGB, []string{"r", "g", "b"}},
	"cmyk": {actCMYK, []string{"c", "m", "y", "k"}},
	"hls":  {actHLS, []string{"h", "l", "s"}},
	"hsv":  {actHSV, []string{"h", "s", "v"}},
}

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sizePayload struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// messageToActions converts a message of the page into actions. A missing
// or null channel of a color model is left unchanged.
func messageToActions(m bootstrap.MessageIn) ([]*action, error) {
	if model, ok := modelKeys[m.Name]; ok {
		values := make(map[string]*int)
		if err := json.Unmarshal(m.Payload, &values); err != nil {
			return nil, errors.Wrapf(err, "invalid %s payload", m.Name)
		}
		fields := make([]Field, len(model.keys))
		for idx, key := range model.keys {
			if v := values[key]; v != nil {
				fields[idx] = Set(*v)
			}
		}
		return []*action{{t: model.t, fields: fields}}, nil
	}

	switch m.Name {
	case "hex", "swatch", "palette":
		var s string
		if err := json.Unmarshal(m.Payload, &s); err != nil {
			return nil, errors.Wrapf(err, "invalid %s payload", m.Name)
		}
		t := map[string]actionType{"hex": actHex, "swatch": actSwatch, "palette": actPalette}[m.Name]
		return []*action{{t: t, a: s}}, nil
	case "hue", "cycle-palette":
		var v int
		if err := json.Unmarshal(m.Payload, &v); err != nil {
			return nil, errors.Wrapf(err, "invalid %s payload", m.Name)
		}
		t := actHue
		if m.Name == "cycle-palette" {
			t = actCyclePalette
		}
		return []*action{{t: t, fields: []Field{Set(v)}}}, nil
	case "pick":
		var p pointPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return nil, errors.Wrapf(err, "invalid %s payload", m.Name)
		}
		return []*action{{t: actPick, x: p.X, y: p.Y}}, nil
	case "previous-history":
		return toActions(actPreviousHistory), nil
	case "next-history":
		return toActions(actNextHistory), nil
	case "accept":
		return toActions(actAccept), nil
	case "abort":
		return toActions(actAbort), nil
	}
	return nil, errors.Errorf("unknown message: %s", m.Name)
}

// handleMessages handles the messages of the page
func (g *GUI) handleMessages(_ *astilectron.Window, m bootstrap.MessageIn) (payload interface{}, err error) {
	if m.Name == msgReady {
		var size sizePayload
		if err := json.Unmarshal(m.Payload, &size); err == nil && size.Width > 0 && size.Height > 0 {
			g.resize(size.Width, size.Height)
		}
		// Nothing changes but the view is redrawn
		g.post(toActions(actIgnore)...)
		return
	}

	actions, err := messageToActions(m)
	if err != nil {
		astilog.Error(err)
		return nil, err
	}
	if !g.post(actions...) {
		return nil, errors.New("picker is not running")
	}
	return
}
