package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/observability"
	"git.home.luguber.info/inful/docnav/internal/project"
	"git.home.luguber.info/inful/docnav/internal/version"
)

// Global carries process-wide state shared by subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: docnav.yaml in the project root)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the navigation tree and write it out"`
	Check CheckCmd `cmd:"" help:"Validate navigation rules against the docs tree"`
	Tree  TreeCmd  `cmd:"" help:"Print the navigation tree"`
	Watch WatchCmd `cmd:"" help:"Rebuild the navigation whenever docs or configuration change"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	g.Logger = observability.SetupLogger(g.Stderr, observability.ParseLogLevel(c.Verbose))
	return nil
}

// ConfigPath returns the -c flag, or docnav.yaml in the project root.
func (c *CLI) ConfigPath() (string, error) {
	if c.Config != "" {
		return c.Config, nil
	}
	return project.ConfigPath(".")
}

// LoadConfig resolves and loads the project configuration.
func (c *CLI) LoadConfig() (*config.Config, error) {
	path, err := c.ConfigPath()
	if err != nil {
		return nil, err
	}
	slog.Debug("Loading configuration", logfields.Config(path))
	return config.Load(path)
}

type exitCode int

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI
	g := &Global{Logger: slog.Default(), Stdout: stdout, Stderr: stderr}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	parser, err := kong.New(&cli,
		kong.Name("docnav"),
		kong.Description("Build documentation navigation trees from a docs directory."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Vars{"version": version.String()},
		kong.Bind(g),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "docnav:", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "docnav: error:", err)
		return 2
	}

	err = kctx.Run(&cli)
	return ferrors.NewCLIErrorAdapter(cli.Verbose, g.Logger).WithOutput(stderr).Report(err)
}
