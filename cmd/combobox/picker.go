package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/config"
	"github.com/alexisbeaulieu97/combobox/internal/logger"
	"github.com/alexisbeaulieu97/combobox/internal/source"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// pickerFlags are shared by every command that builds an engine from a picker
// document. Mode flags override the document's settings only when given.
type pickerFlags struct {
	configPath    string
	multiple      bool
	freeSolo      bool
	autoHighlight bool
	limitTags     int
	filter        string
	exec          string
	execTimeout   time.Duration
	output        string
}

func bindPickerFlags(cmd *cobra.Command, f *pickerFlags) {
	cmd.Flags().StringVarP(&f.configPath, "file", "f", "", "Path to picker document")
	cmd.Flags().BoolVar(&f.multiple, "multiple", false, "Allow selecting several options")
	cmd.Flags().BoolVar(&f.freeSolo, "free-solo", false, "Accept text that matches no option")
	cmd.Flags().BoolVar(&f.autoHighlight, "auto-highlight", false, "Highlight the first option as results change")
	cmd.Flags().IntVar(&f.limitTags, "limit-tags", -1, "Tags shown before collapsing into +N (-1 for unlimited)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Filter mode: substring or fuzzy")
	cmd.Flags().StringVar(&f.exec, "exec", "", "Shell command producing options; {query} expands to the typed text")
	cmd.Flags().DurationVar(&f.execTimeout, "exec-timeout", 5*time.Second, "Timeout for each --exec run")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputText, "Output format: text or yaml")
}

func loadPicker(f *pickerFlags) (*config.Config, error) {
	if strings.TrimSpace(f.configPath) == "" {
		if strings.TrimSpace(f.exec) == "" {
			return nil, newCommandError("load picker", "no option source", errors.New("either --file or --exec is required"), "Pass -f picker.yaml or --exec 'cmd {query}'.")
		}
		return &config.Config{Version: "1.0", Name: "Pick", Settings: config.DefaultSettings()}, nil
	}

	cfg, err := config.ParseConfig(f.configPath)
	if err != nil {
		return nil, newCommandError("load picker", fmt.Sprintf("parsing %q", f.configPath), err, "Run `combobox validate -f <file>` for details.")
	}
	return cfg, nil
}

// applyOverrides copies explicitly set mode flags onto settings.
func applyOverrides(cmd *cobra.Command, f *pickerFlags, s *config.Settings) error {
	flags := cmd.Flags()
	if flags.Changed("multiple") {
		s.Multiple = f.multiple
	}
	if flags.Changed("free-solo") {
		s.FreeSolo = f.freeSolo
	}
	if flags.Changed("auto-highlight") {
		s.AutoHighlight = f.autoHighlight
	}
	if flags.Changed("limit-tags") {
		if f.limitTags < 0 {
			s.LimitTags = nil
		} else {
			limit := f.limitTags
			s.LimitTags = &limit
		}
	}
	if flags.Changed("filter") {
		s.Filter = f.filter
	}

	if err := config.ValidateSettings(*s); err != nil {
		return newCommandError("apply flags", "validating settings", err, "Use --filter substring|fuzzy and a --limit-tags value of at least -1.")
	}
	return checkOutput(f.output)
}

func checkOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	default:
		return newCommandError("apply flags", fmt.Sprintf("output format %q", format), errors.New("unsupported output format"), "Use --output text or --output yaml.")
	}
}

func engineProps(cfg *config.Config) combobox.Props {
	s := cfg.Settings
	return combobox.Props{
		Options:              cfg.EngineOptions(),
		Value:                combobox.Uncontrolled{Default: cfg.InitialValue()},
		FilterOptions:        s.FilterFunc(),
		Multiple:             s.Multiple,
		FreeSolo:             s.FreeSolo,
		Clearable:            s.Clearable,
		OpenOnFocus:          s.OpenOnFocus,
		AutoHighlight:        s.AutoHighlight,
		DisableCloseOnSelect: s.DisableCloseOnSelect,
		LimitTags:            s.LimitTags,
		Disabled:             s.Disabled,
		ReadOnly:             s.ReadOnly,
	}
}

func optionProvider(cfg *config.Config, f *pickerFlags, log *logger.Logger) source.Provider {
	if strings.TrimSpace(f.exec) != "" {
		return source.NewCommand(f.exec, source.WithTimeout(f.execTimeout), source.WithLogger(log))
	}
	return source.NewStatic(cfg.EngineOptions())
}

type selectionEntry struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
	Group string `yaml:"group,omitempty"`
}

func selectionEntries(value combobox.Value, selected []combobox.Option) []selectionEntry {
	raw := value.Values()
	entries := make([]selectionEntry, 0, len(raw))
	for _, v := range raw {
		entry := selectionEntry{Value: v, Label: v}
		for _, opt := range selected {
			if opt.Value == v {
				entry.Label = opt.Label
				entry.Group = opt.Group
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// writeSelection prints the committed value: one raw value per line as text,
// or a mapping (a list in multiple mode) as YAML.
func writeSelection(w io.Writer, format string, value combobox.Value, selected []combobox.Option) error {
	entries := selectionEntries(value, selected)

	if format == outputYAML {
		var doc any = entries
		if !value.Multiple() {
			if len(entries) == 0 {
				doc = nil
			} else {
				doc = entries[0]
			}
		}
		return encodeYAML(w, doc)
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.Value); err != nil {
			return err
		}
	}
	return nil
}

func encodeYAML(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
