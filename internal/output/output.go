// Package output handles terminal reporting for sortd.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Config controls reporter behavior.
type Config struct {
	Verbose   bool
	Writer    io.Writer // defaults to os.Stdout
	ErrWriter io.Writer // defaults to os.Stderr
	IsTTY     bool
}

// DefaultConfig returns a Config wired to the real terminal.
func DefaultConfig(verbose bool) Config {
	return Config{
		Verbose:   verbose,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Reporter prints leveled, color-coded status lines. Info lines only
// appear in verbose mode; success, warning and error lines always
// print. Warnings go to stdout, errors to stderr.
type Reporter struct {
	cfg      Config
	colorize bool
	info     *color.Color
	success  *color.Color
	warn     *color.Color
	err      *color.Color
	banner   *color.Color
}

// New returns a Reporter for cfg. Missing writers default to the
// standard streams. Color is used only on a terminal and respects
// NO_COLOR via the color package.
func New(cfg Config) *Reporter {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}
	return &Reporter{
		cfg:      cfg,
		colorize: cfg.IsTTY && !color.NoColor,
		info:     color.New(color.FgBlue),
		success:  color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		err:      color.New(color.FgRed),
		banner:   color.New(color.FgCyan, color.Bold),
	}
}

// Verbose reports whether info-level lines are being printed.
func (r *Reporter) Verbose() bool {
	return r.cfg.Verbose
}

func (r *Reporter) line(w io.Writer, c *color.Color, tag, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if r.colorize {
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(w, "%s %s\n", tag, message)
}

// Infof prints an info line when verbose mode is on.
func (r *Reporter) Infof(format string, args ...interface{}) {
	if !r.cfg.Verbose {
		return
	}
	r.line(r.cfg.Writer, r.info, "[INFO]", format, args...)
}

// Successf prints a success line.
func (r *Reporter) Successf(format string, args ...interface{}) {
	r.line(r.cfg.Writer, r.success, "[SUCCESS]", format, args...)
}

// Warnf prints a warning line to stdout.
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.line(r.cfg.Writer, r.warn, "[WARN]", format, args...)
}

// Errorf prints an error line to stderr.
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.line(r.cfg.ErrWriter, r.err, "[ERROR]", format, args...)
}

// Plainf prints an untagged line, for summaries.
func (r *Reporter) Plainf(format string, args ...interface{}) {
	fmt.Fprintf(r.cfg.Writer, format+"\n", args...)
}

const bannerArt = `
                   _        _
 ___   ___   _ __ | |_   __| |
/ __| / _ \ | '__|| __| / _` + "`" + ` |
\__ \| (_) || |   | |_ | (_| |
|___/ \___/ |_|    \__| \__,_|
`

// Banner prints the startup banner. Skipped when stdout is not a
// terminal so piped output stays clean.
func (r *Reporter) Banner() {
	if !r.cfg.IsTTY {
		return
	}
	art := bannerArt
	if r.colorize {
		art = r.banner.Sprint(art)
	}
	fmt.Fprintln(r.cfg.Writer, art)
}
