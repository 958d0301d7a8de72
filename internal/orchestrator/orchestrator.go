// Package orchestrator coordinates the scan, classify and move
// pipeline for sortd.
package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"sortd/internal/classifier"
	"sortd/internal/config"
	"sortd/internal/discovery"
	"sortd/internal/organizer"
	"sortd/internal/output"
	"sortd/internal/scanner"
)

// Options selects run behavior.
type Options struct {
	DryRun bool
}

// Result records what happened to one entry.
type Result struct {
	SourcePath      string
	DestinationPath string
	Decision        classifier.Decision
	Moved           bool
	Stale           bool
	Err             error
}

// Runner drives one pass over the configured source directories. The
// same Runner serves watch mode, which feeds single entries through
// Process as they appear.
type Runner struct {
	cfg       *config.Config
	out       *output.Reporter
	mover     *organizer.Mover
	unmatched *discovery.Tally
	dryRun    bool
}

// New returns a Runner over cfg reporting to out.
func New(cfg *config.Config, out *output.Reporter, opts Options) *Runner {
	return &Runner{
		cfg:       cfg,
		out:       out,
		mover:     organizer.NewMover(opts.DryRun),
		unmatched: discovery.NewTally(),
		dryRun:    opts.DryRun,
	}
}

// Run processes every source directory in declared order and returns
// the run summary. A missing source directory is a warning, a failed
// move affects only its entry; the run always visits everything.
func (r *Runner) Run() *Summary {
	start := time.Now()
	summary := &Summary{DryRun: r.dryRun}

	for _, source := range r.cfg.Sources {
		entries, err := scanner.Scan(source)
		if err != nil {
			var scanErr *scanner.ScanError
			if errors.As(err, &scanErr) && scanErr.Type == scanner.DirectoryNotFound {
				r.out.Warnf("Source directory missing, skipping: %s", source)
			} else {
				r.out.Warnf("Cannot scan %s: %v", source, err)
			}
			summary.ScanErrors = append(summary.ScanErrors, err)
			continue
		}

		r.out.Infof("Scanning %s", source)
		for _, entry := range entries {
			result := r.Process(entry)
			summary.Results = append(summary.Results, result)
			if countsProcessed(entry, result) {
				summary.TotalProcessed++
			}
			if result.Moved {
				summary.TotalMoved++
			}
		}
	}

	r.reportUnmatched()
	summary.Elapsed = time.Since(start)
	return summary
}

// Process classifies one entry and carries out the decision.
func (r *Runner) Process(entry scanner.Entry) Result {
	result := Result{SourcePath: entry.FullPath}

	// The scan snapshot may be stale, and a broken symlink stats the
	// same as a vanished file.
	if _, err := os.Stat(entry.FullPath); err != nil {
		r.out.Warnf("Skipping stale entry: %s", entry.Name)
		result.Stale = true
		return result
	}

	decision := classifier.Classify(entry, r.cfg)
	result.Decision = decision

	switch decision.Kind {
	case classifier.Ignored:
		if !decision.Silent {
			r.out.Infof("Ignoring %s (%s)", entry.Name, decision.Reason)
		}
		return result
	case classifier.NoRule:
		r.unmatched.Record(entry.Name)
		r.out.Infof("No rule for %s, leaving in place", entry.Name)
		return result
	}

	targetDir, ok := decision.Destination(r.cfg)
	if !ok {
		// Unreachable, every moving kind routes somewhere.
		return result
	}

	moveResult, err := r.mover.Move(entry.FullPath, targetDir)
	if err != nil {
		r.out.Errorf("Failed to move %s: %v", entry.Name, err)
		result.Err = err
		return result
	}

	result.DestinationPath = moveResult.DestinationPath
	result.Moved = true
	if r.dryRun {
		r.out.Infof("Would move %s -> %s", entry.Name, moveResult.DestinationPath)
	} else {
		r.out.Successf("Moved %s -> %s", entry.Name, moveResult.DestinationPath)
	}
	return result
}

// countsProcessed decides whether an entry joins the processed total.
// Every live file counts, whatever its outcome. Directories only count
// when they move as camera folders.
func countsProcessed(entry scanner.Entry, result Result) bool {
	if result.Stale {
		return false
	}
	if entry.IsDir {
		return result.Decision.Kind == classifier.CameraSpecial
	}
	return true
}

func (r *Runner) reportUnmatched() {
	if r.unmatched.Total() == 0 {
		return
	}
	suggestions := r.unmatched.Suggestions()
	parts := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		parts = append(parts, fmt.Sprintf("%s (%d)", suggestion.Extension, suggestion.Count))
	}
	r.out.Infof("Unmatched extensions: %s", strings.Join(parts, ", "))
}
