package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vippsas/charscan/scanner"
)

var (
	javaCmd = &cobra.Command{
		Use:   "java [file]",
		Short: "Decode whitespace separated Java string literals and print their values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			s, stream, closer, err := openInput(args, config)
			if err != nil {
				return err
			}
			defer closer()

			for {
				s.SkipWhile(scanner.Whitespace)
				if !s.HasNext() {
					break
				}
				value, err := s.ReadJavaStringLiteral()
				if err != nil {
					return err
				}
				fmt.Println(value)
			}
			return stream.Err()
		},
	}
)

func init() {
	rootCmd.AddCommand(javaCmd)
}
