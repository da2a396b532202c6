// Package render writes drawn values as text, JSON lines or a YAML stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Record is one drawn value.
type Record struct {
	Worker int `json:"worker" yaml:"worker"`
	Index  int `json:"index" yaml:"index"`
	Value  any `json:"value" yaml:"value"`
}

// Encoder writes records. Encoders are not safe for concurrent use.
type Encoder interface {
	Encode(r Record) error
	// Close flushes buffered output. It does not close the underlying writer.
	Close() error
}

// New returns an Encoder for format writing to w.
func New(format string, w io.Writer) (Encoder, error) {
	switch format {
	case FormatText, "":
		return &textEncoder{w: w}, nil
	case FormatJSON:
		return &jsonEncoder{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &yamlEncoder{enc: yaml.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, expected one of: text, json, yaml", format)
	}
}

var (
	heads = color.New(color.FgGreen, color.Bold).SprintFunc()
	tails = color.New(color.FgRed).SprintFunc()
)

type textEncoder struct {
	w io.Writer
}

func (e *textEncoder) Encode(r Record) error {
	_, err := fmt.Fprintln(e.w, Text(r.Value))
	return err
}

func (*textEncoder) Close() error { return nil }

// Text formats a single value for the terminal. Booleans render as a
// colored HEADS or tails.
func Text(v any) string {
	switch v := v.(type) {
	case bool:
		if v {
			return heads("HEADS")
		}
		return tails("tails")
	case []string:
		return strings.Join(v, " ")
	default:
		return fmt.Sprint(v)
	}
}

type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) Encode(r Record) error {
	return e.enc.Encode(r)
}

func (*jsonEncoder) Close() error { return nil }

type yamlEncoder struct {
	enc *yaml.Encoder
}

func (e *yamlEncoder) Encode(r Record) error {
	return e.enc.Encode(r)
}

func (e *yamlEncoder) Close() error {
	return e.enc.Close()
}
