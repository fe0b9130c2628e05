// Package session runs the interactive inspection loop over a buffer.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hexview/hexview/buffer"
	"github.com/hexview/hexview/numeric"
	"github.com/hexview/hexview/state"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Session owns the view of one buffer and applies command lines to it.
type Session struct {
	env    Env
	view   state.View
	out    io.Writer
	log    logrus.FieldLogger
	prompt string
}

// Option defines a Session modifier option.
type Option func(s *Session)

// WithOutput sets where reports and console dumps are written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithPrompt sets the text shown before each line is read. Empty disables it.
func WithPrompt(p string) Option {
	return func(s *Session) {
		s.prompt = p
	}
}

// WithHostOrder overrides the detected byte order of the machine. The
// starting view uses it as its default order.
func WithHostOrder(o numeric.Order) Option {
	return func(s *Session) {
		s.env.Host = o
		s.view.Order = o
	}
}

// WithView sets the starting view.
func WithView(v state.View) Option {
	return func(s *Session) {
		s.view = v
	}
}

// New creates a session over buf.
func New(buf buffer.ByteBuffer, opts ...Option) *Session {
	host := numeric.HostOrder()
	s := &Session{
		env:  Env{Buffer: buf, Host: host},
		view: state.New(host),
		out:  os.Stdout,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// View returns the current view.
func (s *Session) View() state.View {
	return s.view
}

// Execute applies one command line and reports whether the session
// should end.
func (s *Session) Execute(text string) bool {
	tokens := Tokenize(text)
	next, out := Apply(s.env, s.view, tokens)
	s.view = next

	if len(out.Ignored) > 0 {
		s.log.WithField("tokens", out.Ignored).Debug("Ignored unknown tokens")
	}
	s.log.WithFields(logrus.Fields{
		"offset": next.Offset,
		"type":   next.Kind.String(),
		"order":  next.Order.String(),
		"row":    next.Row,
	}).Debug("Applied command line")

	io.WriteString(s.out, out.Report)
	if out.Dumped {
		s.emitDump(out.Redirect, out.Dump)
	}
	return out.Quit
}

// Run reads command lines from in until a quit command, end of input or
// cancellation of ctx.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			io.WriteString(s.out, s.prompt)
		}
		if !sc.Scan() {
			return errors.Wrap(sc.Err(), "read command")
		}
		if s.Execute(sc.Text()) {
			return nil
		}
	}
}

// emitDump writes text to the redirect file, or to the console when
// there is none or it cannot be opened.
func (s *Session) emitDump(path, text string) {
	if path == "" {
		io.WriteString(s.out, text)
		return
	}
	err := appendFile(path, text)
	if err == nil {
		fmt.Fprintf(s.out, "[+] Dump written to %s\n", path)
		return
	}
	s.log.WithError(err).WithField("path", path).Warn("Couldn't write dump to file")
	var pe *os.PathError
	if errors.As(err, &pe) && pe.Op == "open" {
		fmt.Fprintf(s.out, "[!] Couldn't open %s, dumping to console\n", path)
		io.WriteString(s.out, text)
		return
	}
	fmt.Fprintf(s.out, "[!] Couldn't write dump. Error: %v\n", err)
}

func appendFile(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	_, err = io.WriteString(f, text)
	return errors.Wrapf(err, "write %s", path)
}
