// Package render writes callback state for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/viant/customtab/callback"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes a callback state
type Renderer func(w io.Writer, state *callback.State) error

// New returns renderer for format
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return Text, nil
	case FormatJSON:
		return JSON, nil
	case FormatYAML:
		return YAML, nil
	}
	return nil, fmt.Errorf("unsupported format: %v", format)
}

// Text writes a human readable listing, nothing is written for a state without data
func Text(w io.Writer, state *callback.State) error {
	if !state.HasData() {
		return nil
	}
	builder := &strings.Builder{}
	builder.WriteString("Callback received:\n")
	fmt.Fprintf(builder, "Scheme: %s\n", printable(state.Scheme))
	fmt.Fprintf(builder, "Host: %s\n", printable(state.Host))
	if len(state.Parameters) > 0 {
		builder.WriteString("Parameters:\n")
		for _, param := range state.Parameters {
			fmt.Fprintf(builder, "  • %s: %s\n", printable(param.Name), printable(param.Value))
		}
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

// printable quotes values with non-printable runes such as terminal escapes
func printable(value string) string {
	if strings.IndexFunc(value, func(r rune) bool { return !unicode.IsPrint(r) }) == -1 {
		return value
	}
	return strconv.Quote(value)
}

// JSON writes state as a JSON object, parameters keep display order
func JSON(w io.Writer, state *callback.State) error {
	if !state.HasData() {
		return nil
	}
	buf := &strings.Builder{}
	buf.WriteString(`{"scheme":`)
	if err := writeJSON(buf, state.Scheme); err != nil {
		return err
	}
	buf.WriteString(`,"host":`)
	if err := writeJSON(buf, state.Host); err != nil {
		return err
	}
	buf.WriteString(`,"parameters":{`)
	for i, param := range state.Parameters {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, param.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSON(buf, param.Value); err != nil {
			return err
		}
	}
	buf.WriteString("}}\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

func writeJSON(buf *strings.Builder, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// YAML writes state as a YAML document, parameters keep display order
func YAML(w io.Writer, state *callback.State) error {
	if !state.HasData() {
		return nil
	}
	params := &yaml.Node{Kind: yaml.MappingNode}
	for _, param := range state.Parameters {
		params.Content = append(params.Content, scalar(param.Name), scalar(param.Value))
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		scalar("scheme"), scalar(state.Scheme),
		scalar("host"), scalar(state.Host),
		scalar("parameters"), params,
	}}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
