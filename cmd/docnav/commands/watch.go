package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/render"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Format   string        `short:"f" help:"Output format (${enum})" default:"json" enum:"json,yaml,html,text"`
	Output   string        `short:"o" required:"" help:"File the navigation is written to on every rebuild"`
	Debounce time.Duration `help:"Quiet period before rebuilding after a change" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	format, err := render.ParseFormat(w.Format)
	if err != nil {
		return err
	}
	cfgPath, err := root.ConfigPath()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return watch.New(build.NewBuildService().WithStdout(g.Stdout), watch.Options{
		ConfigPath: cfgPath,
		Format:     format,
		Output:     w.Output,
		Debounce:   w.Debounce,
	}).Run(ctx)
}
