package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/navigation"
	"git.home.luguber.info/inful/docnav/internal/render"
)

// BuildService is the canonical interface for executing navigation builds.
type BuildService interface {
	// Run executes the pipeline: load docs → navigation → render → write.
	Run(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

// BuildRequest contains all inputs required to execute a build.
type BuildRequest struct {
	// Config is the loaded project configuration.
	Config *config.Config

	// Format selects the renderer.
	Format render.Format

	// Output is the destination file; empty writes to the service's stdout.
	Output string

	// Options provides optional build behavior modifiers.
	Options BuildOptions
}

// BuildOptions provides optional configuration for build behavior.
type BuildOptions struct {
	// DryRun builds the navigation without rendering or writing it.
	DryRun bool

	// SkipIfUnchanged skips rendering when the build signature equals PreviousSignature.
	SkipIfUnchanged bool

	// PreviousSignature is the Signature of the last successful build.
	PreviousSignature string
}

// BuildResult contains the outcome of a build execution.
type BuildResult struct {
	// Status indicates overall build outcome.
	Status BuildStatus

	// BuildID identifies the build in logs.
	BuildID string

	// Links is the navigation tree; nil when the build failed or was skipped.
	Links []navigation.Link

	// Documents is the number of pages found in the docs tree.
	Documents int

	// LinkCount is the number of links in the navigation tree.
	LinkCount int

	// Signature summarizes the docs tree and configuration the build used.
	Signature string

	// Revision is the git HEAD commit of the project, if any.
	Revision string

	// OutputPath is where the navigation was written; empty for stdout.
	OutputPath string

	// Duration is the total build execution time.
	Duration time.Duration

	// StartTime is when the build started.
	StartTime time.Time

	// EndTime is when the build completed.
	EndTime time.Time

	// Skipped indicates the build was skipped due to no changes.
	Skipped bool

	// SkipReason explains why the build was skipped (if Skipped is true).
	SkipReason string
}

// BuildStatus represents the outcome of a build execution.
type BuildStatus string

const (
	// BuildStatusSuccess indicates the build completed successfully.
	BuildStatusSuccess BuildStatus = "success"

	// BuildStatusFailed indicates the build encountered an error.
	BuildStatusFailed BuildStatus = "failed"

	// BuildStatusSkipped indicates the build was skipped (e.g., no changes).
	BuildStatusSkipped BuildStatus = "skipped"

	// BuildStatusCancelled indicates the build was cancelled.
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsTerminal returns true if the status represents a final state.
func (s BuildStatus) IsTerminal() bool {
	return s == BuildStatusSuccess || s == BuildStatusFailed ||
		s == BuildStatusSkipped || s == BuildStatusCancelled
}

// IsSuccess returns true if the build completed successfully.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess || s == BuildStatusSkipped
}
