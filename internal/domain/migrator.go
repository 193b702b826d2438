package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/mrskwiw/routefix/internal/adapter"
	m "github.com/mrskwiw/routefix/internal/model"
)

// defaultFileMode is used when the original file mode cannot be determined.
const defaultFileMode = os.FileMode(0o644)

// MigrateOptions controls a migration run.
type MigrateOptions struct {
	// DryRun skips all writes; reports still carry the unified diff of the
	// change each file would receive.
	DryRun bool

	// Threads is the number of files migrated concurrently. Values below 1
	// mean strictly sequential processing. Each file's read-transform-write
	// cycle is independent, so parallelism never changes the result.
	Threads int
}

// Migrator drives the per-file migration cycle for a list of targets.
type Migrator interface {
	Migrate(ctx context.Context, targets []m.Target, opts MigrateOptions) m.RunReport
}

type migrator struct {
	fs adapter.SourceFSAdapter
}

// NewMigrator creates a Migrator backed by the given filesystem adapter.
func NewMigrator(fs adapter.SourceFSAdapter) Migrator {
	return &migrator{fs: fs}
}

// Migrate runs the transformer over every target. Per-file failures are
// isolated: an unreadable or unwritable file yields a Failed report for that
// target and processing continues with the rest. Reports come back in
// target order regardless of the worker count.
func (mg *migrator) Migrate(ctx context.Context, targets []m.Target, opts MigrateOptions) m.RunReport {
	reports := make([]m.FileReport, len(targets))

	limit := opts.Threads
	if limit < 1 {
		limit = 1
	}

	var group errgroup.Group
	group.SetLimit(limit)

	for i, target := range targets {
		if ctx.Err() != nil {
			reports[i] = m.FileReport{Target: target, Outcome: m.Failed, Err: ctx.Err()}
			continue
		}

		i, target := i, target
		group.Go(func() error {
			reports[i] = mg.migrateOne(target, opts)
			return nil
		})
	}

	// Workers never return errors; failures live in the reports.
	_ = group.Wait()

	return m.RunReport{Files: reports}
}

// migrateOne performs the read-transform-verify-write cycle for one target.
func (mg *migrator) migrateOne(target m.Target, opts MigrateOptions) m.FileReport {
	report := m.FileReport{Target: target}

	content, err := mg.fs.ReadFile(target.Path)
	if err != nil {
		report.Outcome = m.Failed
		report.Err = fmt.Errorf("read %s: %w", target.Path, err)

		return report
	}

	before := string(content)

	result := Transform(before, target.Param)
	if result.Outcome == m.Skipped {
		slog.Debug("target already migrated", "path", target.Path)
		report.Outcome = m.Skipped

		return report
	}

	report.Outcome = result.Outcome
	report.Diff = unifiedDiff(target.Path, before, result.Text)

	if err := Verify(result.Text, target.Param); err != nil {
		slog.Warn("rewrite did not verify", "path", target.Path, "reason", err)

		report.Outcome = m.VerificationFailed
		report.Err = err
	}

	if opts.DryRun {
		return report
	}

	if err := mg.writeBack(target.Path, result.Text); err != nil {
		report.Outcome = m.Failed
		report.Err = err

		return report
	}

	slog.Info("target rewritten", "path", target.Path, "param", target.Param)

	return report
}

// writeBack replaces the file's contents in a single write, preserving the
// original file mode.
func (mg *migrator) writeBack(path m.Path, text string) error {
	perm := defaultFileMode
	if info, err := mg.fs.FileInfo(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := mg.fs.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// unifiedDiff renders the change a file would receive. Diff failures are
// cosmetic, so the diff is simply dropped on error.
func unifiedDiff(path m.Path, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path),
		ToFile:   string(path) + " (migrated)",
		Context:  3,
	})
	if err != nil {
		slog.Debug("diff rendering failed", "path", path, "error", err)
		return ""
	}

	return diff
}
