package use

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/testutil"
	clitest "github.com/thenoetrevino/reportgrid/internal/testutil/cli"
)

func TestUseReport(t *testing.T) {
	db, a := clitest.SetupCLITest(t)
	report := testutil.CreateTestReport(t, db, "Dashboard")
	id := strconv.Itoa(report.ID)
	ctx := context.Background()

	t.Run("set", func(t *testing.T) {
		res := clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{id})
		require.NoError(t, res.Err)
		assert.Equal(t, "export "+cli.ReportEnv+"="+id+"\n", res.Stdout)
		assert.Contains(t, res.Stderr, "Now using report "+id+": Dashboard")
	})

	t.Run("dry run writes nothing to eval", func(t *testing.T) {
		res := clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{id, "--dry-run"})
		require.NoError(t, res.Err)
		assert.Empty(t, res.Stdout)
		assert.Contains(t, res.Stderr, "Would set")
	})

	t.Run("clear", func(t *testing.T) {
		res := clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{"--clear"})
		require.NoError(t, res.Err)
		assert.Equal(t, "unset "+cli.ReportEnv+"\n", res.Stdout)
	})

	t.Run("unknown report", func(t *testing.T) {
		res := clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{"999"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(res.Err))
		assert.Empty(t, res.Stdout)
	})

	t.Run("missing id", func(t *testing.T) {
		res := clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(res.Err))
	})

	t.Run("show", func(t *testing.T) {
		t.Setenv(cli.ReportEnv, "")
		res := clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{"--show"})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "No report context set")

		t.Setenv(cli.ReportEnv, id)
		res = clitest.ExecuteCLICommandWithContext(t, ctx, a, ReportCmd(), []string{"--show"})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Current report: "+id+" - Dashboard")
	})
}
