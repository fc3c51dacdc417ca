// Command xfacade configures the logging facade from flags and/or a YAML or
// TOML file, then emits one message through it.
//
//	xfacade --backend zap info "boot complete"
//	xfacade --config facade.yaml error "disk full"
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/trickstertwo/xfacade"
	"github.com/trickstertwo/xfacade/config"
)

// CLI is the xfacade command line. Empty string flags leave the value from
// --config (or the facade default) in place.
type CLI struct {
	Config  string `help:"Settings file (.yaml, .yml or .toml)." short:"c" type:"existingfile"`
	Level   string `help:"Configured minimum level (info, debug, warn, error)."`
	Output  string `help:"Output target (console, file, gui)."`
	Backend string `help:"Emission backend (native, zap, zerolog, slog)."`
	Filter  bool   `help:"Drop records below the configured level."`
	JSON    bool   `help:"Render JSON on delegating backends." name:"json"`
	NoColor bool   `help:"Disable colours on the zerolog console."`
	Echo    bool   `help:"Register an observer that echoes each record to stderr."`

	Severity string   `arg:"" help:"Severity of the message." enum:"info,debug,warn,warning,error"`
	Message  []string `arg:"" help:"Message text."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Exit); err != nil {
		fmt.Fprintf(os.Stderr, "xfacade: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("xfacade"),
		kong.Description("Emit one message through the xfacade logging facade."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	f, err := cli.settings()
	if err != nil {
		return err
	}
	if cli.Echo {
		xfacade.RegisterCallback(func(r xfacade.Record) {
			fmt.Fprintln(stderr, "observed:", r.Line())
		})
	}
	if _, err := config.Install(f, stdout); err != nil {
		return err
	}

	level, err := xfacade.ParseLevel(cli.Severity)
	if err != nil {
		return err
	}
	xfacade.Log(level, strings.Join(cli.Message, " "))
	return nil
}

// settings layers flags over the --config file over the facade defaults.
func (c *CLI) settings() (config.File, error) {
	f := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return config.File{}, err
		}
		f = loaded
	}
	if c.Level != "" {
		f.Level = c.Level
	}
	if c.Output != "" {
		f.Output = c.Output
	}
	if c.Backend != "" {
		f.Backend = c.Backend
	}
	f.Filter = f.Filter || c.Filter
	f.JSON = f.JSON || c.JSON
	f.NoColor = f.NoColor || c.NoColor
	return f, nil
}
