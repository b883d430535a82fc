package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/build"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/render"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Format          string `short:"f" help:"Output format (${enum})" default:"json" enum:"json,yaml,html,text"`
	Output          string `short:"o" help:"Write the navigation to this file instead of stdout"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write Prometheus metrics for node-exporter textfile collection"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	format, err := render.ParseFormat(b.Format)
	if err != nil {
		return err
	}
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	_, err = RunBuild(context.Background(), g, build.BuildRequest{
		Config: cfg,
		Format: format,
		Output: b.Output,
	}, b.MetricsTextfile)
	return err
}

// RunBuild executes one build. Metrics are written to metricsTextfile, when
// set, whatever the outcome.
func RunBuild(ctx context.Context, g *Global, req build.BuildRequest, metricsTextfile string) (*build.BuildResult, error) {
	svc := build.NewBuildService().WithStdout(g.Stdout)
	var prom *metrics.PrometheusRecorder
	if metricsTextfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		svc.WithRecorder(prom)
	}

	result, err := svc.Run(ctx, req)

	if prom != nil {
		if werr := prom.WriteTextfile(metricsTextfile); werr != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(metricsTextfile), logfields.Error(werr))
			if err == nil {
				err = werr
			}
		}
	}
	return result, err
}
