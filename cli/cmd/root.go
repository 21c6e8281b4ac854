package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "charscan",
		Short:        "charscan",
		SilenceUsage: true,
		Long:         `CLI tool for running the character scanner over files or stdin: delimited reads, numbers and Java string literals.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	directory string
	encoding  string
	capacity  int
	verbose   bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory containing charscan.yaml")
	rootCmd.PersistentFlags().StringVarP(&encoding, "encoding", "e", "", "character encoding of the input; overrides charscan.yaml")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 0, "lookahead capacity of the input stream; overrides charscan.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	return rootCmd.Execute()
}
