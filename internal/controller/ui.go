// Package controller provides output adapters for displaying migration results.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	m "github.com/mrskwiw/routefix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeApply reports files as they are rewritten on disk.
	ModeApply StartMode = iota
	// ModePlan reports what would change, including unified diffs.
	ModePlan
	// ModeCheck reports migration state without implying any write.
	ModeCheck
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithApplyMode sets the UI to apply mode.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// WithPlanMode sets the UI to dry-run plan mode.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithCheckMode sets the UI to read-only check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// UI defines the interface for displaying migration progress and results.
// Implementations can use different output methods (plain text, styled, ...).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	ReportFile(ctx context.Context, report m.FileReport)
	Summarize(ctx context.Context, run m.RunReport)
}

// IsTTY reports whether the given file is attached to a terminal, used to
// decide whether output should be styled.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
