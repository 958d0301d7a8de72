package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sortd/internal/config"
	"sortd/internal/orchestrator"
	"sortd/internal/output"
	"sortd/internal/runlock"
	"sortd/internal/scanner"
	"sortd/internal/watcher"
)

// runSettings holds the flag values for one invocation.
type runSettings struct {
	DryRun  bool
	Verbose bool
	Watch   bool
}

// run executes one sorting pass and, when asked, keeps watching.
func run(settings *runSettings) error {
	// A dry run is only useful if you can see the plan.
	verbose := settings.Verbose || settings.DryRun

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}
	cfg := config.Default(home)

	lock := runlock.New(runlock.DefaultPath())
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	out := output.New(output.DefaultConfig(verbose))
	out.Banner()

	runner := orchestrator.New(cfg, out, orchestrator.Options{DryRun: settings.DryRun})
	summary := runner.Run()
	summary.Report(out)

	if !settings.Watch {
		return nil
	}
	return watchLoop(cfg, out, runner)
}

// watchLoop blocks sorting newly created files until interrupted.
func watchLoop(cfg *config.Config, out *output.Reporter, runner *orchestrator.Runner) error {
	var dirs []string
	for _, source := range cfg.Sources {
		if info, err := os.Stat(source); err != nil || !info.IsDir() {
			out.Warnf("Not watching missing directory: %s", source)
			continue
		}
		dirs = append(dirs, source)
	}
	if len(dirs) == 0 {
		return errors.New("no source directories exist to watch")
	}

	w := watcher.New(watcher.DefaultConfig(), func(path string) (bool, error) {
		entry, err := scanner.Lookup(path)
		if err != nil {
			return false, err
		}
		result := runner.Process(entry)
		return result.Moved, result.Err
	})
	w.OnError = func(err error) {
		out.Warnf("Watch error: %v", err)
	}

	if err := w.Start(dirs); err != nil {
		return fmt.Errorf("cannot start watching: %w", err)
	}

	out.Plainf("Watching %d directories, press Ctrl-C to stop", len(dirs))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	signal.Stop(stop)

	summary := w.Stop()
	out.Plainf("Watched for %s: moved %d, skipped %d",
		summary.Duration.Round(time.Second), summary.FilesMoved, summary.FilesSkipped)
	return nil
}
