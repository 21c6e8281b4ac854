package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	syntaxName string
	acceptEOF  bool

	untilCmd = &cobra.Command{
		Use:   "until <stop> [file]",
		Short: "Split the input at every unquoted, unescaped stop character and print the decoded segments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				_ = cmd.Help()
				return errors.New("wrong number of arguments")
			}
			stop, err := singleChar("stop", args[0])
			if err != nil {
				return err
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}
			syntax, err := config.Syntax(syntaxName)
			if err != nil {
				return err
			}

			s, stream, closer, err := openInput(args[1:], config)
			if err != nil {
				return err
			}
			defer closer()

			segments := 0
			for s.HasNext() {
				text, found := s.ReadUntilSyntax(stop, acceptEOF, syntax)
				if !found {
					logrus.WithField("offset", s.Index()).Warn("last segment is not terminated; use --eof to print it")
					break
				}
				fmt.Println(text)
				segments++
			}
			logrus.WithField("segments", segments).Debug("done")
			return stream.Err()
		},
	}
)

func init() {
	untilCmd.Flags().StringVarP(&syntaxName, "syntax", "s", "sql", "name of the syntax to apply; see the syntaxes command")
	untilCmd.Flags().BoolVar(&acceptEOF, "eof", false, "accept end of input as the end of the last segment")
	rootCmd.AddCommand(untilCmd)
}
