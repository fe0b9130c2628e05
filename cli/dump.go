package cli

import (
	"os"
	"strconv"

	"github.com/DataDrake/cli-ng/v2/cmd"
	"github.com/hexview/hexview/buffer"
	"github.com/hexview/hexview/dump"
	"github.com/hexview/hexview/numeric"
	"github.com/hexview/hexview/source"
	"github.com/hexview/hexview/state"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Dump prints a hex dump of a file or hex text and exits.
var Dump = cmd.Sub{
	Name:  "dump",
	Alias: "d",
	Short: "Print A Hex Dump Of A File Or Hex Text.",
	Args:  &DumpArgs{},
	Flags: &DumpFlags{},
	Run:   DumpRun,
}

// DumpArgs handles the specific arguments for the dump command.
type DumpArgs struct {
	Source []string `zero:"yes" desc:"File or hex text. Hex text is read from stdin when absent."`
}

// DumpFlags handles the specific flags for the dump command.
type DumpFlags struct {
	Type   string `short:"t" long:"type" desc:"Value type, a code (b B h H i I q Q f d) or a name."`
	Order  string `short:"e" long:"order" desc:"Byte order: little, big or native."`
	Row    string `short:"r" long:"row" desc:"Values per row."`
	Offset string `short:"o" long:"offset" desc:"First byte to dump (decimal or 0x..)."`
	Length string `short:"l" long:"length" desc:"Number of bytes to dump (decimal or 0x..)."`
}

// DumpRun handles the execution of the dump command.
func DumpRun(r *cmd.Root, c *cmd.Sub) {
	// Parse Command Args
	args := c.Args.(*DumpArgs)

	// Parse Command Flags
	flags := c.Flags.(*DumpFlags)

	cfg := loadConfig(r)
	view, err := cfg.Session.View(numeric.HostOrder())
	checkErr(err)
	checkErr(applyDumpFlags(&view, flags))

	var buf buffer.ByteBuffer
	if len(args.Source) == 0 {
		buf = reportSource(source.ReadAll(os.Stdin, logrus.StandardLogger()))
	} else {
		buf = loadSource(args.Source)
	}
	data := buf.Window(view.Offset, view.DumpLength())

	renderer := dump.New(
		dump.Kind(view.Kind),
		dump.Order(view.Order),
		dump.Row(view.Row),
	)
	checkErr(renderer.Render(os.Stdout, view.Offset, data))
}

// applyDumpFlags overrides the configured view with command line flags.
func applyDumpFlags(v *state.View, flags *DumpFlags) error {
	if flags.Type != "" {
		k, ok := numeric.ParseKind(flags.Type)
		if !ok {
			return errors.Errorf("unknown type %q", flags.Type)
		}
		v.Kind = k
	}
	if flags.Order != "" {
		o, err := numeric.ParseOrder(flags.Order)
		if err != nil {
			return err
		}
		v.Order = o
	}
	if flags.Row != "" {
		n, err := parseFlagNumber("row", flags.Row)
		if err != nil {
			return err
		}
		if v.SetRow(n) {
			return errors.Errorf("row %d exceeds %d", n, dump.MaxRow)
		}
	}
	if flags.Offset != "" {
		n, err := parseFlagNumber("offset", flags.Offset)
		if err != nil {
			return err
		}
		v.Offset = n
	}
	if flags.Length != "" {
		n, err := parseFlagNumber("length", flags.Length)
		if err != nil {
			return err
		}
		v.SetLength(&n)
	}
	return nil
}

func parseFlagNumber(name, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", name, s)
	}
	return uint32(n), nil
}
