package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
)

var (
	syntaxesCmd = &cobra.Command{
		Use:   "syntaxes",
		Short: "List the syntaxes available to the until command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			for _, name := range config.SyntaxNames() {
				if sc, ok := config.Syntaxes[name]; ok {
					fmt.Printf("%s (charscan.yaml):\n", name)
					fmt.Println(repr.String(sc, repr.Indent("  ")))
				} else {
					fmt.Printf("%s (built-in)\n", name)
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(syntaxesCmd)
}
