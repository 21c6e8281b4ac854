package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vippsas/charscan/scanner"
)

var (
	numbersCmd = &cobra.Command{
		Use:   "numbers [file]",
		Short: "Read whitespace separated decimal numbers and print them normalized",
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
				v, err := s.ReadDouble()
				if err != nil {
					return err
				}
				fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
			}
			return stream.Err()
		},
	}
)

func init() {
	rootCmd.AddCommand(numbersCmd)
}
