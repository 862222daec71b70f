package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/config"
	"github.com/alexisbeaulieu97/combobox/pkg/diff"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var configPath string
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a picker document",
		Long: `Validate parses and validates a picker document, then reports options that
will be dropped and default values that match no option.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := root.newLogger(cmd.Name(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog() //nolint:errcheck

			cfg, err := config.ParseConfig(configPath)
			if err != nil {
				log.Error(err, "picker document is invalid")
				return newCommandError("validate", fmt.Sprintf("parsing %q", configPath), err, "Fix the reported field and run validate again.")
			}

			if err := reportConfig(cmd.OutOrStdout(), configPath, cfg); err != nil {
				return err
			}
			if showDiff {
				return writeNormalizedDiff(cmd.OutOrStdout(), configPath, cfg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "file", "f", "", "Path to picker document")
	cmd.MarkFlagRequired("file") //nolint:errcheck
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show how the engine normalizes the document")

	return cmd
}

func reportConfig(w io.Writer, path string, cfg *config.Config) error {
	options := cfg.EngineOptions()
	dropped := combobox.InvalidOptions(options)
	kept := combobox.SanitizeOptions(options, nil)
	grouped := combobox.Group(kept)

	fmt.Fprintf(w, "✔ %s is valid\n", path)
	fmt.Fprintf(w, "  name:    %s\n", cfg.Name)
	fmt.Fprintf(w, "  options: %d (%d groups)\n", len(kept), len(grouped.Groups))

	mode := "single"
	if cfg.Settings.Multiple {
		mode = "multiple"
	}
	fmt.Fprintf(w, "  mode:    %s, filter %s\n", mode, cfg.Settings.Filter)

	for _, i := range dropped {
		fmt.Fprintf(w, "⚠ option #%d (label %q) has no value and will be dropped\n", i+1, options[i].Label)
	}

	if !cfg.Settings.FreeSolo {
		resolver := combobox.Resolver{Options: kept}
		for _, v := range cfg.InitialValue().Values() {
			if _, ok := resolver.Find(v); !ok {
				fmt.Fprintf(w, "⚠ default value %q matches no option\n", v)
			}
		}
	}

	return nil
}

// writeNormalizedDiff shows the document as written against the document the
// engine works with. Both sides are re-encoded so formatting never shows up
// as a change.
func writeNormalizedDiff(w io.Writer, path string, cfg *config.Config) error {
	var before, after bytes.Buffer
	if err := encodeYAML(&before, cfg); err != nil {
		return err
	}
	if err := encodeYAML(&after, cfg.Normalized()); err != nil {
		return err
	}

	out, stat := diff.Lines(before.Bytes(), after.Bytes(), path, path+" (normalized)")
	if !stat.Changed() {
		_, err := fmt.Fprintln(w, "No normalization changes")
		return err
	}
	if _, err := fmt.Fprintf(w, "%d line(s) added, %d removed\n", stat.Added, stat.Removed); err != nil {
		return err
	}
	_, err := io.WriteString(w, out)
	return err
}
