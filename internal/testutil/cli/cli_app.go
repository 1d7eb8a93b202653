// Package cli runs cobra commands against a test app
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/app"
	"github.com/thenoetrevino/reportgrid/internal/cli"
	"github.com/thenoetrevino/reportgrid/internal/logging"
	"github.com/thenoetrevino/reportgrid/internal/testutil"
)

// SetupCLITest creates an in-memory database and an app on top of it.
// Container IDs come from testutil.SequentialIDs unless opts override it.
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	base := []app.Option{
		app.WithLogger(logging.Discard()),
		app.WithIDGenerator(testutil.SequentialIDs("c")),
	}
	return db, app.New(db, append(base, opts...)...)
}

// Result is the captured outcome of a command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res := ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
	return res.Stdout, res.Err
}

// ExecuteCLICommandWithContext executes a CLI command with a specific
// context and captures both output streams
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil")
	}

	// cobra reads os.Args when no args are set
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(ctx, testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
