package colorpicker

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/asticode/go-astilectron-bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(name string, payload string) bootstrap.MessageIn {
	return bootstrap.MessageIn{Name: name, Payload: json.RawMessage(payload)}
}

func TestMessageToActions(t *testing.T) {
	actions, err := messageToActions(message("rgb", `{"r": 10, "b": null}`))
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, actRGB, actions[0].t)
	assert.Equal(t, []Field{Set(10), Keep, Keep}, actions[0].fields)

	actions, err = messageToActions(message("cmyk", `{"k": 50}`))
	require.NoError(t, err)
	assert.Equal(t, []Field{Keep, Keep, Keep, Set(50)}, actions[0].fields)

	actions, err = messageToActions(message("hls", `{"h": 120, "l": 50, "s": 100}`))
	require.NoError(t, err)
	assert.Equal(t, actHLS, actions[0].t)
	assert.Equal(t, []Field{Set(120), Set(50), Set(100)}, actions[0].fields)

	actions, err = messageToActions(message("hsv", `{"v": 0}`))
	require.NoError(t, err)
	assert.Equal(t, []Field{Keep, Keep, Set(0)}, actions[0].fields)

	actions, err = messageToActions(message("hex", `"#1e90ff"`))
	require.NoError(t, err)
	assert.Equal(t, actHex, actions[0].t)
	assert.Equal(t, "#1e90ff", actions[0].a)

	actions, err = messageToActions(message("palette", `"pastel"`))
	require.NoError(t, err)
	assert.Equal(t, actPalette, actions[0].t)
	assert.Equal(t, "pastel", actions[0].a)

	actions, err = messageToActions(message("cycle-palette", `-1`))
	require.NoError(t, err)
	assert.Equal(t, actCyclePalette, actions[0].t)
	assert.Equal(t, -1, actions[0].fields[0].Value())

	actions, err = messageToActions(message("pick", `{"x": 0.5, "y": 0.25}`))
	require.NoError(t, err)
	assert.Equal(t, actPick, actions[0].t)
	assert.Equal(t, 0.5, actions[0].x)
	assert.Equal(t, 0.25, actions[0].y)

	for name, t2 := range map[string]actionType{
		"accept":           actAccept,
		"abort":            actAbort,
		"previous-history": actPreviousHistory,
		"next-history":     actNextHistory} {
		actions, err = messageToActions(message(name, ``))
		require.NoError(t, err)
		assert.Equal(t, t2, actions[0].t, name)
	}
}

func TestMessageToActionsErrors(t *testing.T) {
	for _, m := range []bootstrap.MessageIn{
		message("rgb", `[1, 2, 3]`),
		message("rgb", `{"r": "red"}`),
		message("hex", `255`),
		message("hue", `"red"`),
		message("pick", `"center"`),
		message("sendCode", `"#FFFFFF"`),
	} {
		_, err := messageToActions(m)
		assert.Error(t, err, m.Name)
	}
}

type sentMessage struct {
	name    string
	payload interface{}
}

type recorder struct {
	mutex    sync.Mutex
	messages []sentMessage
	actions  []*action
	running  bool
}

func (r *recorder) send(name string, payload interface{}) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.messages = append(r.messages, sentMessage{name, payload})
	return nil
}

func (r *recorder) post(actions ...*action) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.actions = append(r.actions, actions...)
	return r.running
}

func (r *recorder) find(name string) (sentMessage, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for idx := len(r.messages) - 1; idx >= 0; idx-- {
		if r.messages[idx].name == name {
			return r.messages[idx], true
		}
	}
	return sentMessage{}, false
}

func newTestGUI() (*GUI, *recorder) {
	r := &recorder{running: true}
	g := NewGUI([]string{"basic", "pastel"}, r.post)
	g.send = r.send
	return g, r
}

func TestGUIFlush(t *testing.T) {
	g, r := newTestGUI()
	c := NewController(g, 0, nil)
	require.NoError(t, c.UpdateFromHex("#1E90FF"))
	g.ShowPalette(Category{"vibrant", []string{"#FF4500", "#1E90FF"}}, 1)
	g.ShowWarning("warning")
	g.Flush()

	m, ok := r.find(msgDisplay)
	require.True(t, ok)
	state := m.payload.(guiState)
	assert.Equal(t, "#1E90FF", state.Color.Hex)
	assert.Equal(t, c.State().HSV, state.Color.HSV)
	assert.Equal(t, 210, state.Hue)
	assert.Equal(t, "#FFFFFF", state.Preview.Text)
	assert.Equal(t, "warning", state.Warning)
	assert.Equal(t, "vibrant", state.Palette)
	assert.Equal(t, 1, state.Active)
	assert.Equal(t, []string{"basic", "pastel"}, state.Palettes)

	// The payload is what the page reads
	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hex":"#1E90FF"`)
	assert.Contains(t, string(data), `"cursor":[1,`)
}

func TestGUIGradient(t *testing.T) {
	g, r := newTestGUI()
	go g.painter.Loop()
	defer g.painter.Stop()

	g.resize(16, 8)
	g.ShowGradient(120)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if m, ok := r.find(msgGradient); ok && m.payload.(gradientPayload).Hue == 120 {
			assert.True(t, strings.HasPrefix(m.payload.(gradientPayload).URL, "data:image/png;base64,"))
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("gradient not painted")
}

func TestGUIHandleMessages(t *testing.T) {
	g, r := newTestGUI()

	_, err := g.handleMessages(nil, message(msgReady, `{"width": 300, "height": 200}`))
	require.NoError(t, err)
	assert.Equal(t, 300, g.width)
	assert.Equal(t, 200, g.height)
	require.Len(t, r.actions, 1)
	assert.Equal(t, actIgnore, r.actions[0].t)

	_, err = g.handleMessages(nil, message("swatch", `"#FF4500"`))
	require.NoError(t, err)
	require.Len(t, r.actions, 2)
	assert.Equal(t, actSwatch, r.actions[1].t)
	assert.Equal(t, "#FF4500", r.actions[1].a)

	_, err = g.handleMessages(nil, message("unknown", ``))
	assert.Error(t, err)

	r.running = false
	_, err = g.handleMessages(nil, message("accept", ``))
	assert.Error(t, err)
}
