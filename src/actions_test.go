package colorpicker

import (
	"strings"
	"testing"
)

func TestParseActionList(t *testing.T) {
	actions, err := parseActionList("rgb(255, _, 0) + palette(Pastel)+ACCEPT")
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions: %v", actions)
	}
	if actions[0].t != actRGB || len(actions[0].fields) != 3 {
		t.Errorf("unexpected action: %v", actions[0])
	}
	if f := actions[0].fields; f[0] != Set(255) || f[1] != Keep || f[2] != Set(0) {
		t.Errorf("unexpected fields: %v", f)
	}
	// Arguments keep their case
	if actions[1].t != actPalette || actions[1].a != "Pastel" {
		t.Errorf("unexpected action: %v", actions[1])
	}
	if actions[2].t != actAccept {
		t.Errorf("unexpected action: %v", actions[2])
	}
}

func TestParseActionArguments(t *testing.T) {
	act, err := parseAction("cmyk(10%,20%,_,0)")
	if err != nil {
		t.Fatal(err)
	}
	if act.t != actCMYK || act.fields[0] != Set(10) || act.fields[1] != Set(20) || act.fields[2] != Keep {
		t.Errorf("unexpected action: %v", act)
	}

	act, err = parseAction("pick(0.25, 1)")
	if err != nil {
		t.Fatal(err)
	}
	if act.t != actPick || act.x != 0.25 || act.y != 1 {
		t.Errorf("unexpected action: %v", act)
	}

	act, err = parseAction("hue(-20)")
	if err != nil {
		t.Fatal(err)
	}
	if act.t != actHue || act.fields[0] != Set(-20) {
		t.Errorf("unexpected action: %v", act)
	}

	act, err = parseAction("hex(#1e90ff)")
	if err != nil {
		t.Fatal(err)
	}
	if act.t != actHex || act.a != "#1e90ff" {
		t.Errorf("unexpected action: %v", act)
	}

	for _, name := range []string{"accept", "abort", "previous-history", "next-history"} {
		if _, err := parseAction(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestParseActionErrors(t *testing.T) {
	for input, message := range map[string]string{
		"":                "no action specified",
		" + ":             "no action specified",
		"foo":             "unknown action: foo",
		"rgb(1,2)":        "rgb requires 3 argument(s)",
		"accept(1)":       "accept requires 0 argument(s)",
		"rgb(1,x,3)":      "not a valid integer: x",
		"hue(red)":        "invalid hue: red",
		"pick(a,b)":       "invalid coordinates",
		"rgb(1,(2),3)":    "invalid action",
		"hex(#fff)+nope!": "invalid action: nope!",
	} {
		_, err := parseActionList(input)
		if err == nil {
			t.Errorf("%q: error expected", input)
			continue
		}
		if !strings.Contains(err.Error(), message) {
			t.Errorf("%q: expected %q, got %q", input, message, err.Error())
		}
	}
}

func TestToActions(t *testing.T) {
	actions := toActions(actAccept, actAbort)
	if len(actions) != 2 || actions[0].t != actAccept || actions[1].t != actAbort {
		t.Errorf("unexpected actions: %v", actions)
	}
}
