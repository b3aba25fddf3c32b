package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themestyle/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string

	logger *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themestyle",
		Short:         "themestyle resolves themed style declarations through pluggable backends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), flags)
			if err != nil {
				return newCommandError("start", "configuring logger", err, "Use one of: debug, info, warn, error.")
			}
			flags.logger = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging (cache decisions and timings)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(out io.Writer, flags *rootFlags) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         flags.logLevel,
		Verbose:       flags.verbose,
		HumanReadable: isTerminal(out),
		Writer:        out,
	})
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
