// Package source turns a command line argument or standard input into
// the bytes to inspect.
package source

import (
	"bufio"
	"io"
	"os"

	"github.com/hexview/hexview/buffer"
	"github.com/hexview/hexview/hextext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Load reads arg as a file. When it cannot be read it is parsed as hex
// text instead. A non-nil error alongside a buffer lists invalid hex
// characters; the buffer then holds everything that did parse.
func Load(arg string, log logrus.FieldLogger) (buffer.ByteBuffer, error) {
	data, err := os.ReadFile(arg)
	if err == nil {
		log.WithFields(logrus.Fields{"path": arg, "size": len(data)}).Debug("Loaded file")
		return buffer.New(data), nil
	}
	log.WithError(err).Debug("Not a readable file, parsing as hex text")
	return parse(arg, log)
}

// ReadLine parses one line of hex text from r. Anything after the first
// newline is left in r.
func ReadLine(r *bufio.Reader, log logrus.FieldLogger) (buffer.ByteBuffer, error) {
	text, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return buffer.ByteBuffer{}, errors.Wrap(err, "read hex text")
	}
	return parse(text, log)
}

// ReadAll parses everything in r as hex text.
func ReadAll(r io.Reader, log logrus.FieldLogger) (buffer.ByteBuffer, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return buffer.ByteBuffer{}, errors.Wrap(err, "read hex text")
	}
	return parse(string(text), log)
}

func parse(text string, log logrus.FieldLogger) (buffer.ByteBuffer, error) {
	data, err := hextext.Parse(text)
	bb := buffer.New(data)
	if err != nil {
		return bb, errors.Wrap(err, "parse hex text")
	}
	log.WithField("size", len(data)).Debug("Parsed hex text")
	return bb, nil
}
