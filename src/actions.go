package colorpicker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type actionType int

const (
	actIgnore actionType = iota
	actRGB
	actCMYK
	actHLS
	actHSV
	actHex
	actHue
	actPick
	actSwatch
	actPalette
	actCyclePalette
	actPreviousHistory
	actNextHistory
	actExpireWarning
	actResponse
	actAccept
	actAbort
	actQuit
)

type action struct {
	t      actionType
	a      string
	fields []Field
	x, y   float64
	fn     func()
}

func toActions(types ...actionType) []*action {
	actions := make([]*action, len(types))
	for idx, t := range types {
		actions[idx] = &action{t: t}
	}
	return actions
}

var actionNames = map[string]struct {
	t     actionType
	arity int
}{
	"rgb":              {actRGB, 3},
	"cmyk":             {actCMYK, 4},
	"hls":              {actHLS, 3},
	"hsv":              {actHSV, 3},
	"hex":              {actHex, 1},
	"hue":              {actHue, 1},
	"pick":             {actPick, 2},
	"swatch":           {actSwatch, 1},
	"palette":          {actPalette, 1},
	"next-palette":     {actCyclePalette, 0},
	"previous-palette": {actCyclePalette, 0},
	"previous-history": {actPreviousHistory, 0},
	"next-history":     {actNextHistory, 0},
	"accept":           {actAccept, 0},
	"abort":            {actAbort, 0},
}

var actionPattern = regexp.MustCompile(`^([A-Za-z-]+)(?:\(([^()]*)\))?$`)

// parseActionList parses actions joined with '+', e.g.
//
//	rgb(255,_,0)+palette(pastel)+accept
//
// A channel given as '_' is left unchanged.
func parseActionList(str string) ([]*action, error) {
	var actions []*action
	for _, token := range strings.Split(str, "+") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}
		act, err := parseAction(token)
		if err != nil {
			return nil, err
		}
		actions = append(actions, act)
	}
	if len(actions) == 0 {
		return nil, errors.New("no action specified")
	}
	return actions, nil
}

func parseAction(token string) (*action, error) {
	match := actionPattern.FindStringSubmatch(token)
	if match == nil {
		return nil, errors.Errorf("invalid action: %s", token)
	}
	name := strings.ToLower(match[1])
	spec, found := actionNames[name]
	if !found {
		return nil, errors.Errorf("unknown action: %s", name)
	}

	var args []string
	if arg := strings.TrimSpace(match[2]); len(arg) > 0 {
		args = strings.Split(arg, ",")
		for idx := range args {
			args[idx] = strings.TrimSpace(args[idx])
		}
	}
	if len(args) != spec.arity {
		return nil, errors.Errorf("%s requires %d argument(s): %s", name, spec.arity, token)
	}

	act := &action{t: spec.t}
	switch spec.t {
	case actCyclePalette:
		act.fields = []Field{Set(1)}
		if name == "previous-palette" {
			act.fields[0] = Set(-1)
		}
	case actRGB, actCMYK, actHLS, actHSV:
		for _, arg := range args {
			field, err := parseField(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid action: %s", token)
			}
			act.fields = append(act.fields, field)
		}
	case actHue:
		hue, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.Errorf("invalid hue: %s", args[0])
		}
		act.fields = []Field{Set(hue)}
	case actPick:
		x, errX := strconv.ParseFloat(args[0], 64)
		y, errY := strconv.ParseFloat(args[1], 64)
		if errX != nil || errY != nil {
			return nil, errors.Errorf("invalid coordinates: %s", token)
		}
		act.x, act.y = x, y
	case actHex, actSwatch, actPalette:
		act.a = args[0]
	}
	return act, nil
}

func parseField(str string) (Field, error) {
	if str == "_" {
		return Keep, nil
	}
	num, err := strconv.Atoi(strings.TrimSuffix(str, "%"))
	if err != nil {
		return Keep, errors.Errorf("not a valid integer: %s", str)
	}
	return Set(num), nil
}
