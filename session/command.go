package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hexview/hexview/buffer"
	"github.com/hexview/hexview/dump"
	"github.com/hexview/hexview/hextext"
	"github.com/hexview/hexview/numeric"
	"github.com/hexview/hexview/search"
	"github.com/hexview/hexview/state"
	"github.com/pkg/errors"
)

// Env is what a session inspects: the bytes and the byte order of the
// machine it runs on.
type Env struct {
	Buffer buffer.ByteBuffer
	Host   numeric.Order
}

// Output is everything one command line produced.
type Output struct {
	// Report holds messages for the console.
	Report string
	// Dump holds the rendered dump when Dumped is set.
	Dump   string
	Dumped bool
	// Redirect names the file the dump goes to, empty for the console.
	Redirect string
	Quit     bool
	// Ignored lists tokens that were not understood.
	Ignored []string
}

// Apply runs the directives of one tokenized line against view and
// returns the resulting view. The dump, if requested, is rendered once
// from the final view.
func Apply(env Env, view state.View, tokens []string) (state.View, Output) {
	l := &line{env: env, view: view, tokens: tokens}
	for l.pos < len(l.tokens) {
		l.step(l.next())
	}
	if l.out.Dumped {
		v := l.view
		data := env.Buffer.Window(v.Offset, v.DumpLength())
		r := dump.New(dump.Kind(v.Kind), dump.Order(v.Order), dump.Row(v.Row))
		l.out.Dump = r.String(v.Offset, data)
	}
	l.out.Report = l.report.String()
	return l.view, l.out
}

type line struct {
	env    Env
	view   state.View
	tokens []string
	pos    int
	out    Output
	report strings.Builder
}

func (l *line) next() string {
	t := l.tokens[l.pos]
	l.pos++
	return t
}

func (l *line) peek() (string, bool) {
	if l.pos >= len(l.tokens) {
		return "", false
	}
	return l.tokens[l.pos], true
}

// optionalNumber consumes the next token when it starts like a number.
func (l *line) optionalNumber() (uint32, bool) {
	t, ok := l.peek()
	if !ok || !looksNumeric(t) {
		return 0, false
	}
	l.pos++
	return parseNumber(t), true
}

// requiredArg consumes the next token whatever it is.
func (l *line) requiredArg() (string, bool) {
	t, ok := l.peek()
	if ok {
		l.pos++
	}
	return t, ok
}

func (l *line) printf(format string, args ...interface{}) {
	fmt.Fprintf(&l.report, format, args...)
}

func (l *line) step(tok string) {
	switch tok {
	case "offset":
		if n, ok := l.optionalNumber(); ok {
			l.view.Offset = n
			return
		}
		l.printf("offset: 0x%08X (%d)\n", l.view.Offset, l.view.Offset)
	case "length":
		if t, ok := l.peek(); ok && (t == "end" || t == "-") {
			l.pos++
			l.view.SetLength(nil)
			return
		}
		if n, ok := l.optionalNumber(); ok {
			l.view.SetLength(&n)
			return
		}
		l.printf("length: %s\n", l.view.LengthString())
	case "row":
		if n, ok := l.optionalNumber(); ok {
			if l.view.SetRow(n) {
				l.printf("[!] row capped at %d\n", dump.MaxRow)
			}
			return
		}
		l.printf("row: %d\n", l.view.Row)
	case "type":
		if t, ok := l.peek(); ok {
			if k, ok := numeric.ParseKind(t); ok {
				l.pos++
				l.view.Kind = k
				return
			}
		}
		l.printf("type: %s (%c)\n", l.view.Kind, l.view.Kind.Code())
	case "little":
		l.view.Order = numeric.Little
	case "big":
		l.view.Order = numeric.Big
	case "endianness":
		l.printf("host byte order: %s\n", l.env.Host)
	case "+", "-":
		t, ok := l.peek()
		if !ok || !looksNumeric(t) {
			l.printf("[!] %s needs a number\n", tok)
			return
		}
		l.pos++
		l.move(tok, t)
	case "find":
		t, ok := l.requiredArg()
		if !ok {
			l.printf("[!] find needs text to look for\n")
			return
		}
		l.find([]byte(t))
	case "find#":
		t, ok := l.requiredArg()
		if !ok {
			l.printf("[!] find# needs hex bytes to look for\n")
			return
		}
		pat, err := hextext.Parse(t)
		l.reportHexErrors(err)
		l.find(pat)
	case "clamp":
		l.clamp()
	case ">>":
		t, ok := l.requiredArg()
		if !ok {
			l.printf("[!] >> needs a file name\n")
			return
		}
		l.out.Redirect = t
	case "d", "dump":
		l.out.Dumped = true
	case "state":
		l.report.WriteString(l.view.Report())
	case "help", "?", "-?":
		l.report.WriteString(HelpText)
	case "q", "quit", "exit":
		l.out.Quit = true
	default:
		switch {
		case tok == "":
		case strings.HasPrefix(tok, ">>"):
			l.out.Redirect = tok[2:]
		case (tok[0] == '+' || tok[0] == '-') && looksNumeric(tok[1:]):
			l.move(tok[:1], tok[1:])
		default:
			l.out.Ignored = append(l.out.Ignored, tok)
		}
	}
}

func (l *line) move(sign, arg string) {
	delta := int64(parseNumber(arg))
	if sign == "-" {
		delta = -delta
	}
	l.view.Advance(delta)
}

func (l *line) find(pat []byte) {
	pos, err := search.Pattern(l.env.Buffer.ByteSlice(), l.view.Offset, pat)
	if err != nil {
		l.printf("[-] %v\n", err)
		return
	}
	l.view.Offset = pos
	l.printf("[+] found at 0x%08X (%d)\n", pos, pos)
}

func (l *line) clamp() {
	var args [3]string
	for i := range args {
		t, ok := l.requiredArg()
		if !ok {
			l.printf("[!] clamp needs <min> <max> <len>\n")
			return
		}
		args[i] = t
	}
	kind := l.view.Kind
	lo, _ := numeric.ParseValue(kind, args[0])
	hi, _ := numeric.ParseValue(kind, args[1])
	r := search.Range{Min: lo, Max: hi, Run: int(parseNumber(args[2]))}

	pos, err := search.Clamp(l.env.Buffer.ByteSlice(), l.view.Offset, kind, l.view.Order, r)
	if err != nil {
		l.printf("[-] %v\n", err)
		return
	}
	l.view.Offset = pos
	l.printf("[+] found %d %s values in [%s, %s] at 0x%08X (%d)\n", r.Run, kind, lo, hi, pos, pos)
}

func (l *line) reportHexErrors(err error) {
	if err == nil {
		return
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		l.printf("[!] %v\n", err)
		return
	}
	for _, e := range merr.Errors {
		l.printf("[!] %v\n", e)
	}
}

// looksNumeric reports whether s starts with a decimal digit.
func looksNumeric(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// parseNumber reads decimal or 0x-prefixed hex. Anything unparseable is 0.
func parseNumber(s string) uint32 {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base, s = 16, s[2:]
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
