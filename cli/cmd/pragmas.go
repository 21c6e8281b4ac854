package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/charscan/pragma"
	"github.com/vippsas/charscan/scanner"
)

// filePragmas scans the *.sql files below dir and returns the include-if
// features of each file that declares any.
func filePragmas(dir string) (map[string][]string, error) {
	result := map[string][]string{}
	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".sql") {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		var p pragma.Pragma
		if err := p.ParsePragmas(scanner.FromReader(f, 256)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logrus.WithFields(logrus.Fields{"file": path, "features": len(p.PragmaIncludeIf())}).Debug("scanned")
		if len(p.PragmaIncludeIf()) > 0 {
			result[path] = p.PragmaIncludeIf()
		}
		return nil
	})
	return result, err
}

var (
	pragmasCmd = &cobra.Command{
		Use:   "pragmas [dir]",
		Short: "Scan a directory tree for *.sql files and report their include-if pragmas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			dir := directory
			if len(args) != 0 {
				dir = args[0]
			}

			found, err := filePragmas(dir)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				fmt.Println("No pragmas found in given paths")
				return nil
			}
			var files []string
			for file := range found {
				files = append(files, file)
			}
			sort.Strings(files)
			for _, file := range files {
				fmt.Printf("%s: %s\n", file, strings.Join(found[file], ","))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(pragmasCmd)
}
