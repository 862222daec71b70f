package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/logger"
	"github.com/alexisbeaulieu97/combobox/internal/source"
)

func newFilterCmd(root *rootFlags) *cobra.Command {
	flags := &pickerFlags{}
	var query string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the options matching a query",
		Long: `Filter runs the picker's filtering and grouping without a terminal UI and
prints the resulting options with their flattened highlight indices.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, root, flags, query)
		},
	}

	bindPickerFlags(cmd, flags)
	cmd.Flags().StringVarP(&query, "query", "q", "", "Text to filter by")

	return cmd
}

func runFilter(cmd *cobra.Command, root *rootFlags, flags *pickerFlags, query string) error {
	cfg, err := loadPicker(flags)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, flags, &cfg.Settings); err != nil {
		return err
	}

	log, closeLog, err := root.newLogger(cmd.Name(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider := optionProvider(cfg, flags, log)
	options, err := provider.Fetch(ctx, query)
	if err != nil {
		return newCommandError("filter", fmt.Sprintf("fetching options for %q", query), err, "Run the --exec command by hand to check its output.")
	}

	props := engineProps(cfg)
	props.Options = options
	if source.Remote(provider) {
		props.FilterOptions = func(opts []combobox.Option, _ string) []combobox.Option { return opts }
	}

	state := filterOptions(props, query, log)
	return writeGrouped(cmd.OutOrStdout(), flags.output, state.GroupedOptions)
}

// filterOptions drives an engine as if query had been typed.
func filterOptions(props combobox.Props, query string, log *logger.Logger) combobox.State {
	props.Disabled = false
	props.ReadOnly = false

	engine := combobox.New(props, log)
	engine.OnInputChange(query)
	return engine.Snapshot()
}

type filterEntry struct {
	Index    int    `yaml:"index"`
	Value    string `yaml:"value"`
	Label    string `yaml:"label"`
	Group    string `yaml:"group,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

func filterEntries(grouped combobox.Grouped) []filterEntry {
	flat := grouped.Flatten()
	entries := make([]filterEntry, len(flat))
	for i, opt := range flat {
		entries[i] = filterEntry{Index: i, Value: opt.Value, Label: opt.Label, Group: opt.Group, Disabled: opt.Disabled}
	}
	return entries
}

// writeGrouped prints ungrouped options first, then each group under its
// name, numbered by flattened index.
func writeGrouped(w io.Writer, format string, grouped combobox.Grouped) error {
	entries := filterEntries(grouped)
	if format == outputYAML {
		return encodeYAML(w, entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No options")
		return err
	}

	currentGroup := ""
	for _, entry := range entries {
		indent := ""
		if entry.Group != "" {
			if entry.Group != currentGroup {
				if _, err := fmt.Fprintf(w, "%s:\n", entry.Group); err != nil {
					return err
				}
				currentGroup = entry.Group
			}
			indent = "  "
		}

		line := fmt.Sprintf("%s%3d  %s", indent, entry.Index, entry.Label)
		if entry.Label != entry.Value {
			line += fmt.Sprintf(" (%s)", entry.Value)
		}
		if entry.Disabled {
			line += " [disabled]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
