package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrskwiw/routefix/internal/manifest"
	m "github.com/mrskwiw/routefix/internal/model"
)

const testRoute = `import { NextRequest, NextResponse } from 'next/server'

export async function GET(
  request: NextRequest,
  { params }: { params: { id: string } }
) {
  try {
    const quiz = await getQuiz(params.id)
    return NextResponse.json(quiz)
  } catch (error) {
    return NextResponse.json({ error: 'Internal server error' }, { status: 500 })
  }
}
`

// writeFixture lays out a route file and a manifest pointing at it, and
// returns the manifest path plus the route path.
func writeFixture(t *testing.T, dir string) (string, string) {
	t.Helper()

	routePath := filepath.Join(dir, "route.ts")
	require.NoError(t, os.WriteFile(routePath, []byte(testRoute), 0o644))

	manifestPath := filepath.Join(dir, "targets.yaml")
	require.NoError(t, manifest.Save(m.Path(manifestPath), []m.Target{
		{Path: m.Path(routePath), Param: "id"},
	}))

	return manifestPath, routePath
}

func TestRunCmd_MigratesManifestTargets(t *testing.T) {
	dir := t.TempDir()
	manifestPath, routePath := writeFixture(t, dir)

	cmd, out := newTestCLI(t, newRunCmd())
	cmd.SetArgs([]string{"run", "--manifest", manifestPath, "--log-file", filepath.Join(dir, "test.log")})

	err := cmd.Execute()
	require.NoError(t, err)

	content, err := os.ReadFile(routePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "interface RouteParams")
	assert.Contains(t, string(content), "const { id } = await params")
	assert.Contains(t, out.String(), "fixed")
}

func TestRunCmd_DryRunDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	manifestPath, routePath := writeFixture(t, dir)

	cmd, out := newTestCLI(t, newRunCmd())
	cmd.SetArgs([]string{"run", "--dry-run", "--manifest", manifestPath, "--log-file", filepath.Join(dir, "test.log")})

	err := cmd.Execute()
	require.NoError(t, err)

	content, err := os.ReadFile(routePath)
	require.NoError(t, err)
	assert.Equal(t, testRoute, string(content))
	assert.Contains(t, out.String(), "would fix")
}

func TestRunCmd_MissingTargetFails(t *testing.T) {
	dir := t.TempDir()

	manifestPath := filepath.Join(dir, "targets.yaml")
	require.NoError(t, manifest.Save(m.Path(manifestPath), []m.Target{
		{Path: m.Path(filepath.Join(dir, "absent", "route.ts")), Param: "id"},
	}))

	cmd, out := newTestCLI(t, newRunCmd())
	cmd.SetArgs([]string{"run", "--manifest", manifestPath, "--log-file", filepath.Join(dir, "test.log")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need attention")
	assert.Contains(t, out.String(), "failed")
}

func TestRunCmd_AlreadyMigratedIsClean(t *testing.T) {
	dir := t.TempDir()
	manifestPath, routePath := writeFixture(t, dir)

	cmd, _ := newTestCLI(t, newRunCmd())
	logFile := filepath.Join(dir, "test.log")
	cmd.SetArgs([]string{"run", "--manifest", manifestPath, "--log-file", logFile})
	require.NoError(t, cmd.Execute())

	migrated, err := os.ReadFile(routePath)
	require.NoError(t, err)

	// Second invocation hits the guard and leaves the file untouched.
	cmd, out := newTestCLI(t, newRunCmd())
	cmd.SetArgs([]string{"run", "--manifest", manifestPath, "--log-file", logFile})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(routePath)
	require.NoError(t, err)
	assert.Equal(t, string(migrated), string(content))
	assert.Contains(t, out.String(), "already migrated")
}
