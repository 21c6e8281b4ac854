package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/charscan/scanner"
)

const testConfig = `
capacity: 128
encoding: latin1
syntaxes:
  xmlish:
    escape: "\\"
    quote: {start: "\"", end: "\"", escape: "\""}
    altquote: {start: "'", end: "'", escape: "'", lazy: true}
    entitystart: "&"
    entityend: ";"
    entities:
      lt: "<"
  sql:
    quote: {start: "'", end: "'", escape: "'"}
`

func withDirectory(t *testing.T, dir string) {
	old := directory
	directory = dir
	t.Cleanup(func() { directory = old })
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "charscan.yaml"), []byte(testConfig), 0o644))
	withDirectory(t, dir)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 128, config.Capacity)
	assert.Equal(t, "latin1", config.Encoding)
	assert.Equal(t, []string{"none", "sql", "xml", "xmlish"}, config.SyntaxNames())

	syntax, err := config.Syntax("xmlish")
	require.NoError(t, err)
	assert.Equal(t, '\\', syntax.Escape)
	assert.Equal(t, scanner.QuotePolicy{Start: '"', End: '"', Escape: '"'}, syntax.Quote)
	assert.Equal(t, scanner.DoubledQuote('\'', true), syntax.AltQuote)

	text, found := scanner.FromString(`"a,b"&lt;\,'',x`).ReadUntilSyntax(',', false, syntax)
	assert.True(t, found)
	assert.Equal(t, "a,b<,'", text)

	// the configuration file takes precedence over the built-in syntax
	syntax, err = config.Syntax("sql")
	require.NoError(t, err)
	assert.Equal(t, scanner.QuotePolicy{}, syntax.AltQuote)

	_, err = config.Syntax("missing")
	assert.Error(t, err)
}

func TestLoadConfig_Missing(t *testing.T) {
	withDirectory(t, t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, config.Syntaxes)

	syntax, err := config.Syntax("sql")
	require.NoError(t, err)
	assert.Equal(t, scanner.SQLSyntax.Quote, syntax.Quote)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "syntaxes: [unclosed"},
		{"long escape", "syntaxes:\n  bad:\n    escape: ab\n"},
		{"long quote", "syntaxes:\n  bad:\n    quote: {start: \"<<\"}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "charscan.yaml"), []byte(tt.content), 0o644))
			withDirectory(t, dir)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestOpenInput_Encoding(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(file, []byte{'s', 0xe6, 'r', ';'}, 0o644))

	s, stream, closer, err := openInput([]string{file}, Config{Encoding: "latin1", Capacity: 32})
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, 32, stream.Capacity())
	text, found := s.ReadUntil(';', false)
	assert.True(t, found)
	assert.Equal(t, "sær", text)
	assert.NoError(t, stream.Err())

	_, _, _, err = openInput([]string{file}, Config{Encoding: "no-such-encoding"})
	assert.Error(t, err)
}

func TestFilePragmas(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	files := map[string]string{
		"a.sql":     "--sqlcode:include-if one,two\ncreate procedure [code].A as select 1",
		"sub/b.sql": "\n--sqlcode:include-if three\n",
		"c.sql":     "create function [code].C()",
		"d.txt":     "--sqlcode:include-if ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	found, err := filePragmas(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		filepath.Join(dir, "a.sql"):     {"one", "two"},
		filepath.Join(dir, "sub/b.sql"): {"three"},
	}, found)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.sql"), []byte("--sqlcode:exclude x"), 0o644))
	_, err = filePragmas(dir)
	assert.ErrorContains(t, err, "Illegal pragma")
}
