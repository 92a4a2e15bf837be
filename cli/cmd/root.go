package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tokenize",
		Short:        "tokenize",
		SilenceUsage: true,
		Long:         `CLI tool for tokenizing Icelandic text into a typed token stream. See README.md.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				logrus.Warnf("unknown log level %q, using info", logLevel)
				level = logrus.InfoLevel
			}
			logrus.SetLevel(level)
		},
	}

	logLevel string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return rootCmd.Execute()
}
