package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/DataDrake/cli-ng/v2/cmd"
	"github.com/hashicorp/go-multierror"
	"github.com/hexview/hexview/buffer"
	"github.com/hexview/hexview/config"
	"github.com/hexview/hexview/source"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var appVersion string = "develop"

// GlobalFlags contains the flags for commands.
type GlobalFlags struct {
	Config  string `short:"c" long:"config" desc:"Specify a custom config path."`
	Verbose bool   `short:"v" long:"verbose" desc:"Log diagnostics to stderr."`
}

// Root is the main command.
var Root *cmd.Root

func init() {
	Root = &cmd.Root{
		Name:    "hexview",
		Short:   "Interactive Hex Dump Inspector",
		Version: appVersion,
		Flags:   &GlobalFlags{},
	}

	cmd.Register(&cmd.Help)
	cmd.Register(&Inspect)
	cmd.Register(&Dump)
	cmd.Register(&Init)
	cmd.Register(&cmd.Version)
}

func checkErr(err error) {
	if err != nil {
		logrus.Fatal(err)
	}
}

// configPath resolves the config path from the global flags. explicit
// is false when the default location is used.
func configPath(r *cmd.Root) (path string, explicit bool) {
	path = r.Flags.(*GlobalFlags).Config
	if path == "" {
		return config.DefaultPath(), false
	}
	return path, true
}

// loadConfig reads the configuration and sets up logging from it. A
// missing file at the default location falls back to defaults.
func loadConfig(r *cmd.Root) config.Config {
	path, explicit := configPath(r)
	cfg, err := config.Read(path)
	if err != nil {
		if explicit || !os.IsNotExist(errors.Cause(err)) {
			checkErr(err)
		}
		cfg = config.Default()
	}
	setupLogging(cfg.LogLevel, r.Flags.(*GlobalFlags).Verbose)
	logrus.WithField("path", path).Debug("Using configuration")
	return cfg
}

// setupLogging routes logrus to stderr so dumps on stdout stay clean.
func setupLogging(level string, verbose bool) {
	logrus.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logrus.SetLevel(lvl)
}

// loadSource reads the bytes to inspect from args, joined as one hex
// text when they are not a file.
func loadSource(args []string) buffer.ByteBuffer {
	return reportSource(source.Load(strings.Join(args, " "), logrus.StandardLogger()))
}

// reportSource prints any invalid hex characters and keeps what parsed.
func reportSource(buf buffer.ByteBuffer, err error) buffer.ByteBuffer {
	if err == nil {
		return buf
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			fmt.Printf("[!] Error: %v\n", e)
		}
	} else {
		fmt.Printf("[!] Error: %v\n", err)
	}
	return buf
}
