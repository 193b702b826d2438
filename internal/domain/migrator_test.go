package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrskwiw/routefix/internal/adapter"
	m "github.com/mrskwiw/routefix/internal/model"
)

func writeRoute(t *testing.T, dir, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func newTestMigrator() Migrator {
	return NewMigrator(adapter.NewLocalSourceFSAdapter())
}

func TestMigrator_RewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeRoute(t, dir, "route.ts", quizRoute)

	mg := newTestMigrator()
	report := mg.Migrate(context.Background(), []m.Target{{Path: path, Param: "id"}}, MigrateOptions{})

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Rewritten, report.Files[0].Outcome)
	assert.NotEmpty(t, report.Files[0].Diff)

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(content), "interface RouteParams")
	assert.Contains(t, string(content), "const { id } = await params")

	// A second run over the rewritten file hits the guard.
	report = mg.Migrate(context.Background(), []m.Target{{Path: path, Param: "id"}}, MigrateOptions{})
	assert.Equal(t, m.Skipped, report.Files[0].Outcome)
	assert.True(t, report.Clean())
}

func TestMigrator_DryRunLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	path := writeRoute(t, dir, "route.ts", quizRoute)

	mg := newTestMigrator()
	report := mg.Migrate(context.Background(), []m.Target{{Path: path, Param: "id"}}, MigrateOptions{DryRun: true})

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Rewritten, report.Files[0].Outcome)
	assert.Contains(t, report.Files[0].Diff, "+interface RouteParams {")

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, quizRoute, string(content), "dry run must not write")
}

func TestMigrator_MissingFileIsIsolated(t *testing.T) {
	dir := t.TempDir()
	good := writeRoute(t, dir, "users/route.ts", userRoute)
	missing := m.Path(filepath.Join(dir, "absent/route.ts"))

	mg := newTestMigrator()
	report := mg.Migrate(context.Background(), []m.Target{
		{Path: missing, Param: "id"},
		{Path: good, Param: "username"},
	}, MigrateOptions{})

	require.Len(t, report.Files, 2)

	assert.Equal(t, m.Failed, report.Files[0].Outcome)
	require.Error(t, report.Files[0].Err)
	assert.Contains(t, report.Files[0].Err.Error(), string(missing))

	// The failure must not abort the remaining targets.
	assert.Equal(t, m.Rewritten, report.Files[1].Outcome)
	assert.False(t, report.Clean())
}

func TestMigrator_VerificationFailureStillWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeRoute(t, dir, "route.ts", noTryRoute)

	mg := newTestMigrator()
	report := mg.Migrate(context.Background(), []m.Target{{Path: path, Param: "id"}}, MigrateOptions{})

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.VerificationFailed, report.Files[0].Outcome)
	require.Error(t, report.Files[0].Err)

	// Best-effort transform: the partial rewrite is persisted, the outcome
	// tells the operator to review it.
	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(content), "{ params }: RouteParams")
	assert.NotContains(t, string(content), "const { id } = await params")
}

func TestMigrator_ParallelKeepsReportOrder(t *testing.T) {
	dir := t.TempDir()

	targets := make([]m.Target, 0, 8)
	for i := 0; i < 8; i++ {
		name := filepath.Join("api", string(rune('a'+i)), "route.ts")
		path := writeRoute(t, dir, name, quizRoute)
		targets = append(targets, m.Target{Path: path, Param: "id"})
	}

	mg := newTestMigrator()
	report := mg.Migrate(context.Background(), targets, MigrateOptions{Threads: 4})

	require.Len(t, report.Files, len(targets))
	for i, file := range report.Files {
		assert.Equal(t, targets[i].Path, file.Target.Path, "report %d out of order", i)
		assert.Equal(t, m.Rewritten, file.Outcome)
	}
}

func TestMigrator_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeRoute(t, dir, "route.ts", quizRoute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mg := newTestMigrator()
	report := mg.Migrate(ctx, []m.Target{{Path: path, Param: "id"}}, MigrateOptions{})

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Failed, report.Files[0].Outcome)

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, quizRoute, string(content), "cancelled run must not write")
}
