package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/customtab/callback"
	"gopkg.in/yaml.v3"
)

func TestText(t *testing.T) {
	testCases := []struct {
		description string
		state       *callback.State
		expect      string
	}{
		{
			description: "with parameters",
			state: &callback.State{Scheme: "https", Host: "app.example.com", Parameters: callback.Parameters{
				{Name: "state", Value: "xyz"},
				{Name: "code", Value: "abc123"},
			}},
			expect: "Callback received:\nScheme: https\nHost: app.example.com\nParameters:\n  • state: xyz\n  • code: abc123\n",
		},
		{
			description: "without parameters",
			state:       &callback.State{Scheme: "myapp", Host: "callback"},
			expect:      "Callback received:\nScheme: myapp\nHost: callback\n",
		},
		{
			description: "control characters quoted",
			state: &callback.State{Scheme: "myapp", Host: "callback", Parameters: callback.Parameters{
				{Name: "msg", Value: "\x1b[2Jgone"},
				{Name: "line\nbreak", Value: "ok"},
				{Name: "plain", Value: "hello world ü"},
			}},
			expect: "Callback received:\nScheme: myapp\nHost: callback\nParameters:\n" +
				"  • msg: \"\\x1b[2Jgone\"\n" +
				"  • \"line\\nbreak\": ok\n" +
				"  • plain: hello world ü\n",
		},
		{
			description: "no data",
			state:       &callback.State{Scheme: "myapp", Parameters: callback.Parameters{{Name: "a", Value: "1"}}},
			expect:      "",
		},
		{
			description: "nil state",
			expect:      "",
		},
	}
	for _, testCase := range testCases {
		buf := &bytes.Buffer{}
		require.NoError(t, Text(buf, testCase.state), testCase.description)
		assert.Equal(t, testCase.expect, buf.String(), testCase.description)
	}
}

func TestJSON(t *testing.T) {
	state := &callback.State{Scheme: "myapp", Host: "callback", Parameters: callback.Parameters{
		{Name: "z", Value: `quo"te`},
		{Name: "a", Value: ""},
	}}
	buf := &bytes.Buffer{}
	require.NoError(t, JSON(buf, state))
	assert.Equal(t, `{"scheme":"myapp","host":"callback","parameters":{"z":"quo\"te","a":""}}`+"\n", buf.String())

	var decoded struct {
		Scheme     string            `json:"scheme"`
		Parameters map[string]string `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string{"z": `quo"te`, "a": ""}, decoded.Parameters)
}

func TestYAML(t *testing.T) {
	state := &callback.State{Scheme: "myapp", Host: "callback", Parameters: callback.Parameters{
		{Name: "z", Value: "1"},
		{Name: "a", Value: "true"},
	}}
	buf := &bytes.Buffer{}
	require.NoError(t, YAML(buf, state))
	output := buf.String()
	assert.Contains(t, output, "scheme: myapp\nhost: callback\nparameters:\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("  z:")), bytes.Index(buf.Bytes(), []byte("  a:")))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]interface{}{"z": "1", "a": "true"}, decoded["parameters"])
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "text", "JSON", "yaml"} {
		renderer, err := New(format)
		assert.NoError(t, err, format)
		assert.NotNil(t, renderer, format)
	}
	_, err := New("xml")
	assert.Error(t, err)
}
