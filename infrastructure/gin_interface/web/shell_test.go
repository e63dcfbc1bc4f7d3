package web

import (
	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

// fakeBrowser stubs the DOM and fetch. Each fetch stays pending until the
// test settles it with respond or fail.
const fakeBrowser = `
var elements = {};
function makeElement(id) {
  return {
    id: id, hidden: false, disabled: false, textContent: '', value: '', src: '',
    children: [], listeners: {}, playCount: 0,
    addEventListener: function (type, fn) { this.listeners[type] = fn; },
    appendChild: function (child) { this.children.push(child); },
    removeAttribute: function (name) { this[name] = ''; },
    load: function () {},
    play: function () { this.playCount++; return Promise.resolve(); }
  };
}
['verse-form', 'topic', 'rapper', 'submit', 'verse-spinner', 'verse-panel', 'verse',
 'play', 'audio-spinner', 'player'].forEach(function (id) { elements[id] = makeElement(id); });
elements['rapper'].value = 'eminem';

var document = {
  getElementById: function (id) { return elements[id]; },
  createElement: function (tag) { return makeElement(tag); }
};
var window = { addEventListener: function () {} };
var console = { error: function () {} };
var alerts = [];
function alert(message) { alerts.push(message); }

var objectURLs = 0;
var URL = {
  createObjectURL: function () { objectURLs++; return 'blob:' + objectURLs; },
  revokeObjectURL: function () {}
};

var requests = [];
function fetch(url, options) {
  return new Promise(function (resolve, reject) {
    requests.push({ url: url, body: JSON.parse(options.body), resolve: resolve, reject: reject });
  });
}
function respond(index, ok, data) {
  requests[index].resolve({
    ok: ok,
    json: function () { return Promise.resolve(data); },
    blob: function () { return Promise.resolve({ size: 3 }); }
  });
}
function fail(index) { requests[index].reject(new Error('network down')); }

function submit(topic) {
  elements['topic'].value = topic;
  elements['verse-form'].listeners.submit({ preventDefault: function () {} });
}
function clickPlay() { elements['play'].listeners.click(); }
`

func newShell(t *testing.T) *goja.Runtime {
	t.Helper()

	static, err := Static()
	require.NoError(t, err)
	file, err := static.Open("shell.js")
	require.NoError(t, err)
	defer file.Close()
	script, err := io.ReadAll(file)
	require.NoError(t, err)

	vm := goja.New()
	_, err = vm.RunString(fakeBrowser)
	require.NoError(t, err)
	_, err = vm.RunString(string(script))
	require.NoError(t, err)

	return vm
}

func run(t *testing.T, vm *goja.Runtime, code string) goja.Value {
	t.Helper()

	value, err := vm.RunString(code)
	require.NoError(t, err, code)
	return value
}

func displayVerse(t *testing.T, vm *goja.Runtime, topic string, rap string) {
	t.Helper()

	run(t, vm, `submit(`+quote(topic)+`)`)
	run(t, vm, `respond(requests.length - 1, true, { rap: `+quote(rap)+` })`)
	require.False(t, run(t, vm, `elements['play'].hidden`).ToBoolean())
}

func quote(s string) string {
	return "'" + s + "'"
}

func TestShell_VerseThenAudio(t *testing.T) {
	vm := newShell(t)

	run(t, vm, `submit('pizza')`)
	assert.True(t, run(t, vm, `elements['submit'].disabled`).ToBoolean())
	assert.Equal(t, "/api/generate-rap", run(t, vm, `requests[0].url`).String())
	assert.Equal(t, "eminem", run(t, vm, `requests[0].body.rapper`).String())

	run(t, vm, `respond(0, true, { rap: 'Slice after slice' })`)
	assert.False(t, run(t, vm, `elements['submit'].disabled`).ToBoolean())
	assert.False(t, run(t, vm, `elements['verse-panel'].hidden`).ToBoolean())

	run(t, vm, `clickPlay()`)
	assert.Equal(t, "/api/generate-audio", run(t, vm, `requests[1].url`).String())
	assert.Equal(t, "Slice after slice", run(t, vm, `requests[1].body.text`).String())
	assert.True(t, run(t, vm, `elements['play'].disabled`).ToBoolean())

	run(t, vm, `respond(1, true, null)`)
	assert.Equal(t, int64(1), run(t, vm, `objectURLs`).ToInteger())
	assert.Equal(t, int64(1), run(t, vm, `elements['player'].playCount`).ToInteger())
	assert.False(t, run(t, vm, `elements['player'].hidden`).ToBoolean())
}

func TestShell_SubmitIgnoredWhileVerseInFlight(t *testing.T) {
	vm := newShell(t)

	run(t, vm, `submit('pizza')`)
	run(t, vm, `submit('tacos')`)

	assert.Equal(t, int64(1), run(t, vm, `requests.length`).ToInteger())
}

func TestShell_StaleAudioDroppedAfterNewSubmission(t *testing.T) {
	vm := newShell(t)
	displayVerse(t, vm, "pizza", "First verse")

	run(t, vm, `clickPlay()`)
	run(t, vm, `submit('tacos')`)
	require.Equal(t, int64(3), run(t, vm, `requests.length`).ToInteger())

	// audio for the first verse lands while the second verse is pending
	run(t, vm, `respond(1, true, null)`)

	assert.True(t, run(t, vm, `elements['submit'].disabled`).ToBoolean())
	assert.True(t, run(t, vm, `elements['verse-panel'].hidden`).ToBoolean())
	assert.True(t, run(t, vm, `elements['player'].hidden`).ToBoolean())
	assert.Equal(t, int64(0), run(t, vm, `objectURLs`).ToInteger())
	assert.Equal(t, int64(0), run(t, vm, `elements['player'].playCount`).ToInteger())

	run(t, vm, `submit('burritos')`)
	assert.Equal(t, int64(3), run(t, vm, `requests.length`).ToInteger())

	run(t, vm, `respond(2, true, { rap: 'Second verse' })`)
	assert.False(t, run(t, vm, `elements['submit'].disabled`).ToBoolean())
	assert.True(t, run(t, vm, `elements['player'].hidden`).ToBoolean())
	assert.Empty(t, run(t, vm, `elements['player'].src`).String())
}

func TestShell_StaleAudioFailureDoesNotAlert(t *testing.T) {
	vm := newShell(t)
	displayVerse(t, vm, "pizza", "First verse")

	run(t, vm, `clickPlay()`)
	run(t, vm, `submit('tacos')`)
	run(t, vm, `fail(1)`)

	assert.Equal(t, int64(0), run(t, vm, `alerts.length`).ToInteger())
	assert.True(t, run(t, vm, `elements['submit'].disabled`).ToBoolean())
}

func TestShell_AudioFailureAlerts(t *testing.T) {
	vm := newShell(t)
	displayVerse(t, vm, "pizza", "First verse")

	run(t, vm, `clickPlay()`)
	run(t, vm, `respond(1, false, null)`)

	assert.Equal(t, int64(1), run(t, vm, `alerts.length`).ToInteger())
	assert.False(t, run(t, vm, `elements['play'].disabled`).ToBoolean())
	assert.True(t, run(t, vm, `elements['player'].hidden`).ToBoolean())
}

func TestShell_VerseFailureShowsMessage(t *testing.T) {
	vm := newShell(t)

	run(t, vm, `submit('pizza')`)
	run(t, vm, `respond(0, false, { error: 'Failed to generate rap' })`)

	assert.False(t, run(t, vm, `elements['verse-panel'].hidden`).ToBoolean())
	assert.True(t, run(t, vm, `elements['play'].hidden`).ToBoolean())
	assert.Contains(t, run(t, vm, `elements['verse'].children[elements['verse'].children.length - 1].textContent`).String(),
		"error generating your rap")
}
