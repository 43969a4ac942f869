// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cli contains the helpers shared by phytools commands:
// reading tree files,
// writing outputs,
// and progress logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger with timestamps
// that writes to w.
// If verbose is true,
// debug messages are reported.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "phytools",
	})
}

// Progress reports the time elapsed
// since the start of an operation.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts a progress tracker.
func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs a message with the elapsed time.
func (p *Progress) Done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
