package config

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
)

// Config represents a picker document: behaviour flags, the option list and an
// optional initial selection.
type Config struct {
	Version      string       `yaml:"version" validate:"required,semver"`
	Name         string       `yaml:"name" validate:"required,min=1,max=100"`
	Placeholder  string       `yaml:"placeholder,omitempty" validate:"max=200"`
	Settings     Settings     `yaml:"settings,omitempty"`
	DefaultValue DefaultValue `yaml:"default_value,omitempty"`
	Options      []OptionSpec `yaml:"options,omitempty" validate:"omitempty,dive"`
}

// Settings holds the autocomplete mode flags.
type Settings struct {
	Multiple             bool   `yaml:"multiple,omitempty"`
	FreeSolo             bool   `yaml:"free_solo,omitempty"`
	Clearable            bool   `yaml:"clearable,omitempty"`
	OpenOnFocus          bool   `yaml:"open_on_focus,omitempty"`
	AutoHighlight        bool   `yaml:"auto_highlight,omitempty"`
	DisableCloseOnSelect bool   `yaml:"disable_close_on_select,omitempty"`
	LimitTags            *int   `yaml:"limit_tags,omitempty" validate:"omitempty,min=0,max=1000"`
	Filter               string `yaml:"filter,omitempty" validate:"omitempty,filter_mode"`
	MaxVisible           int    `yaml:"max_visible,omitempty" validate:"omitempty,min=1,max=100"`
	ReadOnly             bool   `yaml:"read_only,omitempty"`
	Disabled             bool   `yaml:"disabled,omitempty"`
}

// UnmarshalYAML applies DefaultSettings for keys that are absent from the
// document, so clearing stays enabled unless explicitly turned off.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	type rawSettings Settings
	temp := rawSettings(DefaultSettings())
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*s = Settings(temp)
	return nil
}

// OptionSpec is one option entry as written in the document. Entries without
// a value are accepted here and dropped, with a warning, when handed to the
// engine.
type OptionSpec struct {
	Label    string         `yaml:"label" validate:"max=500"`
	Value    string         `yaml:"value"`
	Group    string         `yaml:"group,omitempty" validate:"max=100"`
	Disabled bool           `yaml:"disabled,omitempty"`
	Data     map[string]any `yaml:"data,omitempty"`
}

// DefaultValue accepts either a scalar or a sequence of strings.
type DefaultValue []string

// UnmarshalYAML decodes a scalar as a one-element list.
func (d *DefaultValue) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		if single == "" {
			*d = nil
			return nil
		}
		*d = DefaultValue{single}
		return nil
	default:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*d = DefaultValue(many)
		return nil
	}
}

// DefaultSettings returns the settings used when no document is supplied.
func DefaultSettings() Settings {
	return Settings{
		Clearable:  true,
		Filter:     "substring",
		MaxVisible: 8,
	}
}

// EngineOptions converts the option specs into engine options.
func (c *Config) EngineOptions() []combobox.Option {
	if c == nil {
		return nil
	}
	options := make([]combobox.Option, len(c.Options))
	for i, spec := range c.Options {
		label := spec.Label
		if strings.TrimSpace(label) == "" {
			label = spec.Value
		}
		var data any
		if len(spec.Data) > 0 {
			data = spec.Data
		}
		options[i] = combobox.Option{
			Label:    label,
			Value:    spec.Value,
			Group:    spec.Group,
			Disabled: spec.Disabled,
			Data:     data,
		}
	}
	return options
}

// InitialValue converts the default selection for the configured mode.
func (c *Config) InitialValue() combobox.Value {
	if c == nil {
		return combobox.SingleValue("")
	}
	if c.Settings.Multiple {
		return combobox.MultiValue(c.DefaultValue...)
	}
	if len(c.DefaultValue) == 0 {
		return combobox.SingleValue("")
	}
	return combobox.SingleValue(c.DefaultValue[0])
}

// FilterFunc resolves the configured filter.
func (s Settings) FilterFunc() combobox.FilterFunc {
	return combobox.FilterByName(s.Filter)
}

// Normalized returns a copy of the document as the engine will see it: labels
// default to values and options that fail validation are dropped.
func (c *Config) Normalized() *Config {
	if c == nil {
		return nil
	}
	out := *c

	invalid := combobox.InvalidOptions(c.EngineOptions())
	out.Options = make([]OptionSpec, 0, len(c.Options)-len(invalid))
	next := 0
	for i, spec := range c.Options {
		if next < len(invalid) && invalid[next] == i {
			next++
			continue
		}
		if strings.TrimSpace(spec.Label) == "" {
			spec.Label = spec.Value
		}
		out.Options = append(out.Options, spec)
	}
	return &out
}
