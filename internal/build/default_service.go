package build

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/navigation"
	"git.home.luguber.info/inful/docnav/internal/observability"
	"git.home.luguber.info/inful/docnav/internal/project"
	"git.home.luguber.info/inful/docnav/internal/render"
)

// Stage names reported to logs and metrics.
const (
	StageLoad   = "load"
	StageRender = "render"
	StageWrite  = "write"
)

// DocsLoader loads the docs tree rooted at dir.
type DocsLoader func(ctx context.Context, dir string) (*docs.Directory, error)

// DefaultBuildService is the standard implementation of BuildService.
type DefaultBuildService struct {
	loader   DocsLoader
	recorder metrics.Recorder
	stdout   io.Writer
}

// NewBuildService creates a new DefaultBuildService reading docs from disk and
// writing to os.Stdout.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		loader:   docs.Load,
		recorder: metrics.NoopRecorder{},
		stdout:   os.Stdout,
	}
}

// WithDocsLoader allows injecting a custom docs loader (for testing).
func (s *DefaultBuildService) WithDocsLoader(loader DocsLoader) *DefaultBuildService {
	s.loader = loader
	return s
}

// WithRecorder sets the metrics recorder.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithStdout sets the writer used when a request has no output file.
func (s *DefaultBuildService) WithStdout(w io.Writer) *DefaultBuildService {
	s.stdout = w
	return s
}

// Run executes the complete build pipeline.
func (s *DefaultBuildService) Run(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	startTime := time.Now()
	ctx = observability.NewBuildContext(ctx)

	result := &BuildResult{
		BuildID:    observability.GetContext(ctx).BuildID,
		StartTime:  startTime,
		OutputPath: req.Output,
	}
	finish := func(status BuildStatus, outcome string) {
		result.Status = status
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(startTime)
		s.recorder.IncBuildOutcome(outcome)
		s.recorder.ObserveBuildDuration(result.Duration)
	}
	fail := func(err error) (*BuildResult, error) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			finish(BuildStatusCancelled, metrics.OutcomeCanceled)
			return result, err
		}
		finish(BuildStatusFailed, metrics.OutcomeFailed)
		observability.ErrorContext(ctx, "Build failed", logfields.Error(err))
		return result, err
	}

	if req.Config == nil {
		return fail(ferrors.ConfigError("config required").Build())
	}
	cfg := req.Config

	renderer, err := render.New(req.Format, render.Options{Title: cfg.Title})
	if err != nil {
		return fail(err)
	}

	if cfg.BaseDir != "" {
		if rev, err := project.Revision(cfg.BaseDir); err != nil {
			observability.WarnContext(ctx, "Could not resolve project revision", logfields.Error(err))
		} else {
			result.Revision = rev
		}
	}

	// Stage 1: load the docs tree
	stageStart := time.Now()
	loadCtx := observability.WithStage(ctx, StageLoad)
	observability.InfoContext(loadCtx, "Loading documentation", logfields.DocsDir(cfg.DocsPath()))
	tree, err := s.loader(loadCtx, cfg.DocsPath())
	if err != nil {
		return fail(err)
	}
	s.recorder.ObserveStageDuration(StageLoad, time.Since(stageStart))
	result.Documents = tree.CountDocuments()
	observability.DebugContext(loadCtx, "Documentation loaded",
		logfields.Docs(result.Documents), logfields.Elapsed(time.Since(stageStart)))

	sig, err := Signature(cfg, tree)
	if err != nil {
		return fail(ferrors.WrapError(err, ferrors.CategoryInternal, "failed to compute build signature").Build())
	}
	result.Signature = sig

	if req.Options.SkipIfUnchanged && req.Options.PreviousSignature == sig {
		result.Skipped = true
		result.SkipReason = "no_changes"
		finish(BuildStatusSkipped, metrics.OutcomeSkipped)
		observability.InfoContext(ctx, "Build skipped - no changes detected")
		return result, nil
	}

	// Stage 2: navigation
	links, err := navigation.New(cfg).WithRecorder(s.recorder).BuildFor(ctx, tree)
	if err != nil {
		return fail(err)
	}
	result.Links = links
	result.LinkCount = navigation.CountLinks(links)

	if req.Options.DryRun {
		finish(BuildStatusSuccess, metrics.OutcomeSuccess)
		observability.InfoContext(ctx, "Navigation checked",
			logfields.Links(result.LinkCount), logfields.Elapsed(result.Duration))
		return result, nil
	}

	// Stage 3: render
	stageStart = time.Now()
	var buf bytes.Buffer
	if err := renderer.Render(&buf, links); err != nil {
		return fail(ferrors.RenderError("failed to render navigation").WithCause(err).
			WithContext("format", string(req.Format)).
			Build())
	}
	s.recorder.ObserveStageDuration(StageRender, time.Since(stageStart))

	// Stage 4: write
	stageStart = time.Now()
	if req.Output == "" {
		if _, err := buf.WriteTo(s.stdout); err != nil {
			return fail(ferrors.FileSystemError("failed to write navigation").WithCause(err).Build())
		}
	} else if err := writeOutput(req.Output, buf.Bytes()); err != nil {
		return fail(err)
	}
	s.recorder.ObserveStageDuration(StageWrite, time.Since(stageStart))

	finish(BuildStatusSuccess, metrics.OutcomeSuccess)
	observability.InfoContext(ctx, "Navigation built",
		logfields.Links(result.LinkCount),
		logfields.Docs(result.Documents),
		logfields.Format(string(req.Format)),
		logfields.Output(req.Output),
		logfields.Elapsed(result.Duration))
	return result, nil
}
