package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/combobox/internal/logger"
)

type rootFlags struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "combobox",
		Short:         "Combobox is an autocomplete picker for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newFilterCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to --log-file when set, since
// an interactive picker owns the terminal; otherwise to stderr. The returned
// func closes the log file, if any.
func (f *rootFlags) newLogger(component string, stderr io.Writer) (*logger.Logger, func() error, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}

	if f.logFile == "" {
		log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: stderr, Component: component})
		return log, func() error { return nil }, err
	}

	file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, newCommandError("open log file", f.logFile, err, "Check that the directory exists and is writable.")
	}

	log, err := logger.New(logger.Options{Level: level, Writer: file, Component: component})
	if err != nil {
		file.Close() //nolint:errcheck
		return nil, nil, err
	}
	return log, file.Close, nil
}
