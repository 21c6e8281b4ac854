package cmd

import (
	"fmt"
	"os"
	"path"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vippsas/charscan/scanner"
)

type QuoteConfig struct {
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Escape string `yaml:"escape"`
	Lazy   bool   `yaml:"lazy"`
}

type SyntaxConfig struct {
	Escape      string            `yaml:"escape"`
	Quote       QuoteConfig       `yaml:"quote"`
	AltQuote    QuoteConfig       `yaml:"altquote"`
	EntityStart string            `yaml:"entitystart"`
	EntityEnd   string            `yaml:"entityend"`
	Entities    map[string]string `yaml:"entities"`
}

type Config struct {
	Syntaxes map[string]SyntaxConfig `yaml:"syntaxes"`
	Capacity int                     `yaml:"capacity"`
	Encoding string                  `yaml:"encoding"`
}

var builtinSyntaxes = map[string]scanner.Syntax{
	"none": {},
	"sql":  scanner.SQLSyntax,
	"xml":  scanner.XMLSyntax,
}

// LoadConfig reads charscan.yaml from the configured directory. A missing
// file is not an error; the built-in syntaxes are always available.
func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "charscan.yaml")
	yamlFile, err := os.ReadFile(configFilename)
	if os.IsNotExist(err) {
		return result, nil
	} else if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, errors.Wrapf(err, "parse %s", configFilename)
	}
	for name, sc := range result.Syntaxes {
		if _, err := sc.ToSyntax(); err != nil {
			return Config{}, errors.Wrapf(err, "syntax %s in %s", name, configFilename)
		}
	}
	return result, nil
}

// Syntax looks a syntax up by name, preferring the configuration file over
// the built-in ones.
func (c Config) Syntax(name string) (scanner.Syntax, error) {
	if sc, ok := c.Syntaxes[name]; ok {
		return sc.ToSyntax()
	}
	if s, ok := builtinSyntaxes[name]; ok {
		return s, nil
	}
	return scanner.Syntax{}, fmt.Errorf("unknown syntax %q", name)
}

// SyntaxNames lists configured and built-in syntax names in sorted order.
func (c Config) SyntaxNames() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, m := range []map[string]struct{}{keys(c.Syntaxes), keys(builtinSyntaxes)} {
		for name := range m {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func keys[V any](m map[string]V) map[string]struct{} {
	result := make(map[string]struct{}, len(m))
	for k := range m {
		result[k] = struct{}{}
	}
	return result
}

func (q QuoteConfig) toPolicy() (scanner.QuotePolicy, error) {
	var p scanner.QuotePolicy
	var err error
	if p.Start, err = singleChar("start", q.Start); err != nil {
		return p, err
	}
	if p.End, err = singleChar("end", q.End); err != nil {
		return p, err
	}
	if p.Escape, err = singleChar("escape", q.Escape); err != nil {
		return p, err
	}
	p.Lazy = q.Lazy
	return p, nil
}

func (sc SyntaxConfig) ToSyntax() (scanner.Syntax, error) {
	var s scanner.Syntax
	var err error
	if s.Escape, err = singleChar("escape", sc.Escape); err != nil {
		return s, err
	}
	if s.Quote, err = sc.Quote.toPolicy(); err != nil {
		return s, errors.Wrap(err, "quote")
	}
	if s.AltQuote, err = sc.AltQuote.toPolicy(); err != nil {
		return s, errors.Wrap(err, "altquote")
	}
	start, err := singleChar("entitystart", sc.EntityStart)
	if err != nil {
		return s, err
	}
	end, err := singleChar("entityend", sc.EntityEnd)
	if err != nil {
		return s, err
	}
	if start != scanner.NUL {
		s = s.WithEntities(start, end, scanner.MapResolver(sc.Entities))
	}
	return s, nil
}

func singleChar(field, value string) (rune, error) {
	if value == "" {
		return scanner.NUL, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return scanner.NUL, fmt.Errorf("%s: expected a single character, got %q", field, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
