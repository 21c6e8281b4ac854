// Package pragma reads the sqlcode pragma lines found at the top of a SQL
// file, for instance
//
//	--sqlcode:include-if feature1,feature2
//
// It is a small parser written on top of the scanner package.
package pragma

import (
	"fmt"

	"github.com/vippsas/charscan/scanner"
)

const prefix = "--sqlcode:"

type Pragma struct {
	pragmas []string
}

func (d Pragma) PragmaIncludeIf() []string {
	return d.pragmas
}

// parseSinglePragma assumes prefix has been consumed and reads the rest of
// the line.
func (d *Pragma) parseSinglePragma(s *scanner.Scanner) error {
	line, _ := s.ReadLine(true)
	if line == "" {
		return nil
	}

	ls := scanner.FromString(line)
	if !ls.ExpectStrict("include-if", false) || ls.SkipWhile(scanner.Whitespace) == 0 {
		return fmt.Errorf("Illegal pragma: %s%s", prefix, line)
	}
	features, _ := ls.ReadUntilFilter(scanner.Whitespace, true)
	if ls.HasNext() {
		return fmt.Errorf("Illegal pragma: %s%s", prefix, line)
	}

	fs := scanner.FromString(features)
	for fs.HasNext() {
		feature, _ := fs.ReadUntil(',', true)
		d.pragmas = append(d.pragmas, feature)
	}
	return nil
}

// ParsePragmas reads consecutive pragma lines, skipping whitespace between
// them. It stops in front of the first line that is not a pragma.
func (d *Pragma) ParsePragmas(s *scanner.Scanner) error {
	for {
		s.SkipWhile(scanner.Whitespace)
		if !s.ExpectStrict(prefix, false) {
			return nil
		}
		if err := d.parseSinglePragma(s); err != nil {
			return err
		}
	}
}
