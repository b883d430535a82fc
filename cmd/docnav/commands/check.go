package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/render"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct{}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	result, err := RunBuild(context.Background(), g, build.BuildRequest{
		Config:  cfg,
		Format:  render.FormatJSON,
		Options: build.BuildOptions{DryRun: true},
	}, "")
	if err != nil {
		return err
	}

	rules := "default navigation"
	if cfg.HasNavigation() {
		rules = fmt.Sprintf("%d rules", config.CountRules(cfg.Navigation))
	}
	_, err = fmt.Fprintf(g.Stdout, "Navigation OK: %d links from %d documents (%s)\n",
		result.LinkCount, result.Documents, rules)
	return err
}
