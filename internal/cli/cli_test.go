package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/reportgrid/internal/app"
	"github.com/thenoetrevino/reportgrid/internal/converters"
	"github.com/thenoetrevino/reportgrid/internal/database"
	"github.com/thenoetrevino/reportgrid/internal/logging"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
	"github.com/thenoetrevino/reportgrid/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"report not found", fmt.Errorf("get: %w", database.ErrReportNotFound), "REPORT_NOT_FOUND", ExitNotFound},
		{"container not found", layoutservice.ErrContainerNotFound, "CONTAINER_NOT_FOUND", ExitNotFound},
		{"version conflict", database.ErrVersionConflict, "VERSION_CONFLICT", ExitConflict},
		{"usage", Usagef("missing --%s", "id"), "USAGE_ERROR", ExitUsage},
		{"bad document", fmt.Errorf("%w: row 0", converters.ErrInvalidDocument), "INVALID_DOCUMENT", ExitDataErr},
		{"row full", layoutservice.ErrRowFull, "ROW_FULL", ExitValidation},
		{"bad width", layoutservice.ErrInvalidWidth, "VALIDATION_ERROR", ExitValidation},
		{"empty title", reportservice.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
		{"marked invalid", Invalid(errors.New("unknown content type")), "VALIDATION_ERROR", ExitValidation},
		{"anything else", errors.New("disk on fire"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := Classify(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitConflict, ExitCode(&StatusError{Code: ExitConflict, Err: errors.New("x")}))
	assert.Equal(t, ExitNotFound, ExitCode(database.ErrReportNotFound))

	wrapped := fmt.Errorf("command: %w", &StatusError{Code: ExitUsage, Err: ErrUsage})
	assert.Equal(t, ExitUsage, ExitCode(wrapped))
	assert.ErrorIs(t, wrapped, ErrUsage)
}

func TestOutputFormatter(t *testing.T) {
	t.Run("human mode", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := &OutputFormatter{Out: &out, ErrOut: &errOut}

		f.Printf("hello %d\n", 1)
		err := f.Fail(layoutservice.ErrRowFull)

		assert.Equal(t, "hello 1\n", out.String())
		assert.Contains(t, errOut.String(), "row has no room")
		assert.Contains(t, errOut.String(), "Suggestion")
		assert.Equal(t, ExitValidation, ExitCode(err))
		assert.ErrorIs(t, err, layoutservice.ErrRowFull)
	})

	t.Run("json mode", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{JSON: true, Out: &out}

		f.Printf("not shown")
		require.NoError(t, f.JSONSuccess(map[string]any{"report_id": 3}))

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, true, got["success"])
		assert.EqualValues(t, 3, got["report_id"])
	})

	t.Run("json error", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{JSON: true, Out: &out}

		err := f.Fail(fmt.Errorf("load: %w", database.ErrReportNotFound))
		assert.Equal(t, ExitNotFound, ExitCode(err))

		var got struct {
			Success bool `json:"success"`
			Error   struct {
				Code       string `json:"code"`
				Suggestion string `json:"suggestion"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.False(t, got.Success)
		assert.Equal(t, "REPORT_NOT_FOUND", got.Error.Code)
		assert.Contains(t, got.Error.Suggestion, "report list")
	})

	t.Run("quiet mode", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{Quiet: true, Out: &out}

		f.Printf("not shown")
		f.Println(42)
		assert.Equal(t, "42\n", out.String())
	})
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	AddReportFlag(cmd)
	return cmd
}

func TestGetReportID(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(ReportEnv, "9")
		cmd := reportCmd()
		require.NoError(t, cmd.Flags().Set("report", "4"))

		id, err := GetReportID(cmd, "report")
		require.NoError(t, err)
		assert.Equal(t, 4, id)
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ReportEnv, "9")
		id, err := GetReportID(reportCmd(), "report")
		require.NoError(t, err)
		assert.Equal(t, 9, id)
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(ReportEnv, "")
		_, err := GetReportID(reportCmd(), "report")
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv(ReportEnv, "abc")
		_, err := GetReportID(reportCmd(), "report")
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("non-positive flag", func(t *testing.T) {
		cmd := reportCmd()
		require.NoError(t, cmd.Flags().Set("report", "0"))
		_, err := GetReportID(cmd, "report")
		assert.ErrorIs(t, err, ErrUsage)
	})
}

func TestParseReportArg(t *testing.T) {
	id, err := ParseReportArg("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, bad := range []string{"", "x", "-1", "0"} {
		_, err := ParseReportArg(bad)
		assert.ErrorIs(t, err, ErrUsage, bad)
	}
}

func TestRunUsesInjectedApp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	report := testutil.CreateTestReport(t, db, "Injected")
	a := app.New(db, app.WithLogger(logging.Discard()))

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)
	cmd.SetContext(WithApp(context.Background(), a))

	err := Run(cmd, func(ctx context.Context, c *CLI, f *OutputFormatter) error {
		got, err := c.App.ReportService.GetReportByID(ctx, report.ID)
		if err != nil {
			return f.Fail(err)
		}
		f.Printf("%s\n", got.Title)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Injected\n", out.String())

	// The injected app's database stays usable after Run closes the CLI
	_, err = a.ReportService.GetReportByID(context.Background(), report.ID)
	assert.NoError(t, err)
}

func TestConnectDaemon(t *testing.T) {
	ctx := context.Background()

	t.Run("missing socket logs a hint", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelDebug)

		client := connectDaemon(ctx, filepath.Join(t.TempDir(), "none.sock"), logger)
		assert.Nil(t, client)
		assert.Contains(t, buf.String(), "daemon not available")
		assert.Contains(t, buf.String(), `reason="Socket file not found"`)
		assert.Contains(t, buf.String(), `hint="Start daemon: reportgrid-daemon"`)
	})

	t.Run("running daemon", func(t *testing.T) {
		socketPath := filepath.Join(t.TempDir(), "d.sock")
		listener, err := (&net.ListenConfig{}).Listen(ctx, "unix", socketPath)
		require.NoError(t, err)
		t.Cleanup(func() { _ = listener.Close() })
		accepted := make(chan net.Conn, 1)
		go func() {
			if conn, err := listener.Accept(); err == nil {
				accepted <- conn
			}
		}()

		client := connectDaemon(ctx, socketPath, logging.Discard())
		require.NotNil(t, client)
		assert.NoError(t, client.Close())

		select {
		case conn := <-accepted:
			_ = conn.Close()
		case <-time.After(time.Second):
			t.Fatal("daemon never saw the connection")
		}
	})
}
