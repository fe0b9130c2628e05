package cli

import (
	"fmt"
	"os"

	"github.com/DataDrake/cli-ng/v2/cmd"
	"github.com/hexview/hexview/config"
)

// Init writes a default configuration file.
var Init = cmd.Sub{
	Name:  "init",
	Short: "Write A Default Config File.",
	Flags: &InitFlags{},
	Run:   InitRun,
}

// InitFlags handles the specific flags for the init command.
type InitFlags struct {
	Overwrite bool `long:"overwrite" desc:"Overwrite an existing config file."`
}

// InitRun handles the execution of the init command.
func InitRun(r *cmd.Root, c *cmd.Sub) {
	// Parse Command Flags
	flags := c.Flags.(*InitFlags)

	path, _ := configPath(r)
	if _, err := os.Stat(path); err == nil && !flags.Overwrite {
		fmt.Printf("Config %s already exists.\nUse --overwrite flag if you'd like to replace it.\n", path)
		return
	}

	checkErr(config.Write(path, config.Default()))
	fmt.Printf("[+] Wrote default config to %s\n", path)
}
