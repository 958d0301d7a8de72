package orchestrator

import (
	"time"

	"sortd/internal/output"
)

// Summary contains the statistics of one run.
type Summary struct {
	TotalProcessed int
	TotalMoved     int
	Results        []Result
	ScanErrors     []error
	Elapsed        time.Duration
	DryRun         bool
}

// FailureCount returns how many entries failed to move.
func (s *Summary) FailureCount() int {
	count := 0
	for _, result := range s.Results {
		if result.Err != nil {
			count++
		}
	}
	return count
}

// Report prints the end-of-run summary.
func (s *Summary) Report(out *output.Reporter) {
	if s.DryRun {
		out.Plainf("Processed %d files, would move %d. Dry run, no files were moved.",
			s.TotalProcessed, s.TotalMoved)
	} else {
		out.Plainf("Processed %d files, moved %d in %s",
			s.TotalProcessed, s.TotalMoved, s.Elapsed.Round(time.Millisecond))
	}
	if failures := s.FailureCount(); failures > 0 {
		out.Warnf("%d entries could not be moved", failures)
	}
}
