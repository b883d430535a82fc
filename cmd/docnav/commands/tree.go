package commands

import (
	"context"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/render"
)

// TreeCmd implements the 'tree' command: build --format text to stdout.
type TreeCmd struct{}

func (t *TreeCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	_, err = RunBuild(context.Background(), g, build.BuildRequest{Config: cfg, Format: render.FormatText}, "")
	return err
}
