package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/combobox/internal/tui"
)

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return termIsTerminal(int(file.Fd()))
}

func newPickCmd(root *rootFlags) *cobra.Command {
	flags := &pickerFlags{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick options interactively and print the selection",
		Long: `Pick opens an autocomplete field on the terminal. The committed value is
printed to stdout once an option is chosen (or on Ctrl+D in multiple mode);
the picker itself is drawn on stderr so the output can be piped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, root, flags)
		},
	}

	bindPickerFlags(cmd, flags)

	return cmd
}

func runPick(cmd *cobra.Command, root *rootFlags, flags *pickerFlags) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.ErrOrStderr()) {
		return newCommandError("pick", "starting the picker", errors.New("stdin and stderr must be a terminal"), "Use `combobox filter` for non-interactive use.")
	}

	cfg, err := loadPicker(flags)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, flags, &cfg.Settings); err != nil {
		return err
	}

	log, closeLog, err := root.newLogger(cmd.Name(), io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	opts := tui.Options{
		Title:       cfg.Name,
		Placeholder: cfg.Placeholder,
		MaxVisible:  cfg.Settings.MaxVisible,
		Props:       engineProps(cfg),
		Provider:    optionProvider(cfg, flags, log),
		Logger:      log,
	}

	result, err := tui.Run(cmd.Context(), opts, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("pick", "running the picker", err, "Check that the terminal supports interactive programs.")
	}
	if result.Cancelled() || !result.Submitted() {
		return errCancelled
	}

	return writeSelection(cmd.OutOrStdout(), flags.output, result.Value(), result.SelectedOptions())
}
