package stripprefix

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultPattern matches one or more digits followed by a literal double dash.
const DefaultPattern = `^\d+--`

// Options configures one plugin instance. They are fixed for the lifetime of a build.
type Options struct {
	Pattern        string `yaml:"pattern"`
	Verbose        bool   `yaml:"verbose"`
	Strict         bool   `yaml:"strict"`
	StripLinks     bool   `yaml:"strip_links"`
	StripNavTitles bool   `yaml:"strip_nav_titles"`
	DryRun         bool   `yaml:"dry_run"`
}

// DefaultOptions returns the options used for keys a config entry leaves out.
func DefaultOptions() Options {
	return Options{
		Pattern:        DefaultPattern,
		Strict:         true,
		StripNavTitles: true,
	}
}

// DecodeOptions overlays raw plugin options from a config file onto the
// defaults. Unknown keys and mistyped values are errors.
func DecodeOptions(raw map[string]any) (Options, error) {
	opts := DefaultOptions()
	if len(raw) == 0 {
		return opts, nil
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return opts, invalidOptionsError(err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return DefaultOptions(), invalidOptionsError(err)
	}
	return opts, nil
}
