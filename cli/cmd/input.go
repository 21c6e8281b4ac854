package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/vippsas/charscan/scanner"
)

// openInput returns a stream scanner over the file named in args, or stdin
// if there is none or it is "-". The input is decoded to UTF-8 according to
// the --encoding flag or the configuration.
func openInput(args []string, config Config) (*scanner.Scanner, *scanner.Stream, func() error, error) {
	var (
		r      io.Reader = os.Stdin
		name             = "stdin"
		closer           = func() error { return nil }
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, nil, err
		}
		r, name, closer = f, args[0], f.Close
	}

	enc := encoding
	if enc == "" {
		enc = config.Encoding
	}
	if enc != "" {
		e, err := htmlindex.Get(enc)
		if err != nil {
			_ = closer()
			return nil, nil, nil, errors.Wrapf(err, "encoding %s", enc)
		}
		r = transform.NewReader(r, e.NewDecoder())
	}

	size := capacity
	if size == 0 {
		size = config.Capacity
	}
	stream := scanner.NewStream(r, size)
	logrus.WithFields(logrus.Fields{
		"input":    name,
		"encoding": enc,
		"capacity": stream.Capacity(),
	}).Debug("opened input")
	return scanner.New(stream), stream, closer, nil
}
