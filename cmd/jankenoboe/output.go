package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatText OutputFormat = "text"
)

// Set implements pflag.Value.
func (f *OutputFormat) Set(v string) error {
	switch OutputFormat(v) {
	case FormatJSON, FormatYAML, FormatText:
		*f = OutputFormat(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q, %q or %q", v, FormatJSON, FormatYAML, FormatText)
	}
	return nil
}

// String implements pflag.Value.
func (f *OutputFormat) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

var (
	_ pflag.Value = (*OutputFormat)(nil)
)

// listOutput is the payload of the listing commands.
type listOutput[T any] struct {
	Count   int `json:"count" yaml:"count"`
	Results []T `json:"results" yaml:"results"`
}

type reviewOutput struct {
	File        string   `json:"file" yaml:"file"`
	Count       int      `json:"count" yaml:"count"`
	LearningIDs []string `json:"learning_ids" yaml:"learning_ids"`
}

// writeOutput encodes v in the selected format. printText renders the text format.
func writeOutput(w io.Writer, format OutputFormat, v interface{}, printText func(w io.Writer)) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("yaml.Encode() > %w", err)
		}
		return encoder.Close()
	case FormatText:
		printText(w)
		return nil
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("json.Encode() > %w", err)
		}
		return nil
	}
}
