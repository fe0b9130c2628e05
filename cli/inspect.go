package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/DataDrake/cli-ng/v2/cmd"
	"github.com/hexview/hexview/buffer"
	"github.com/hexview/hexview/numeric"
	"github.com/hexview/hexview/session"
	"github.com/hexview/hexview/source"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Inspect starts an interactive session over a file or hex text.
var Inspect = cmd.Sub{
	Name:  "inspect",
	Alias: "i",
	Short: "Interactively Inspect A File Or Hex Text.",
	Args:  &InspectArgs{},
	Run:   InspectRun,
}

// InspectArgs handles the specific arguments for the inspect command.
type InspectArgs struct {
	Source []string `zero:"yes" desc:"File or hex text. Read from the first input line when absent."`
}

// InspectRun handles the execution of the inspect command.
func InspectRun(r *cmd.Root, c *cmd.Sub) {
	// Parse Command Args
	args := c.Args.(*InspectArgs)

	// Read in configuration and the starting view.
	cfg := loadConfig(r)
	host := numeric.HostOrder()
	view, err := cfg.Session.View(host)
	checkErr(err)

	// Only prompt when a person is typing.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in := bufio.NewReader(os.Stdin)

	var buf buffer.ByteBuffer
	if len(args.Source) == 0 {
		if interactive {
			fmt.Print("Enter your hex text: ")
		}
		buf = reportSource(source.ReadLine(in, logrus.StandardLogger()))
	} else {
		buf = loadSource(args.Source)
	}

	prompt := ""
	if interactive {
		prompt = cfg.Session.Prompt
		fmt.Printf("[+] Loaded %d bytes. Type help for commands.\n", buf.Len())
	}

	s := session.New(buf,
		session.WithHostOrder(host),
		session.WithView(view),
		session.WithPrompt(prompt),
		session.WithLogger(logrus.StandardLogger()),
	)
	checkErr(s.Run(context.Background(), in))
}
