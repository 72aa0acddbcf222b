// Package pipeline provides the high-level orchestration for the badge sync process.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arash/credly-sync/internal/fetch"
	"github.com/arash/credly-sync/internal/grouping"
	"github.com/arash/credly-sync/internal/observability"
	"github.com/arash/credly-sync/internal/patching"
	"github.com/arash/credly-sync/internal/rendering"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	BadgesURL   string
	ReadmePath  string
	StartMarker string
	EndMarker   string
	IssuerOrder []string
	Timeout     time.Duration
	Verbose     bool

	// Out and Err default to os.Stdout and os.Stderr. Status messages go to
	// Out, warnings and errors to Err.
	Out io.Writer
	Err io.Writer
}

// Run executes the sync pipeline: fetch -> group -> render -> patch.
//
// A fetch failure is not a pipeline failure: the README is left untouched, a
// warning is printed, and Run returns nil so the process exits successfully.
// A document-structure failure (missing or misordered markers) is returned to
// the caller and aborts the run without writing.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	fetchOpts := fetch.DefaultOptions()
	if opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}

	badges, err := fetch.Badges(ctx, opts.BadgesURL, fetchOpts)
	if err != nil {
		fmt.Fprintf(opts.Err, "WARNING: Failed to fetch badges: %v\n", err)
		fmt.Fprintf(opts.Out, "Keeping existing README content.\n")
		return nil
	}

	grouped := grouping.Group(badges, opts.IssuerOrder)
	if opts.Verbose {
		observability.NewPrinter(opts.Out).PrintGroupedBadges(grouped)
	}

	section := rendering.RenderSection(grouped)

	status, err := patching.Apply(opts.ReadmePath, section, opts.StartMarker, opts.EndMarker)
	if err != nil {
		return err
	}

	switch status {
	case patching.StatusUnchanged:
		fmt.Fprintf(opts.Out, "No changes needed.\n")
	case patching.StatusUpdated:
		fmt.Fprintf(opts.Out, "%s updated with badges.\n", opts.ReadmePath)
	}
	return nil
}
