package tui

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/reportgrid/internal/app"
	"github.com/thenoetrevino/reportgrid/internal/config"
	"github.com/thenoetrevino/reportgrid/internal/logging"
	"github.com/thenoetrevino/reportgrid/internal/testutil"
)

type editorFixture struct {
	model    Model
	app      *app.App
	db       *sql.DB
	reportID int
	t        *testing.T
}

// newEditor seeds a report with the given containers and returns an editor
// that has finished its initial load
func newEditor(t *testing.T, cfg *config.Config, specs ...testutil.ContainerSpec) *editorFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	report := testutil.CreateTestReport(t, db, "Weekly")
	if len(specs) > 0 {
		testutil.SeedLayout(t, db, report.ID, specs...)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	application := app.New(db,
		app.WithLogger(logging.Discard()),
		app.WithIDGenerator(testutil.SequentialIDs("n")),
	)
	m := New(context.Background(), application.LayoutService, cfg, report.ID, nil)

	f := &editorFixture{app: application, db: db, reportID: report.ID, t: t}
	f.model = runCmd(t, m, m.Init())
	return f
}

// press sends a key and runs the resulting commands to completion
func (f *editorFixture) press(keys ...string) {
	f.t.Helper()
	for _, k := range keys {
		f.model = update(f.t, f.model, keyPress(k))
	}
}

func keyPress(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return runCmd(t, next.(Model), cmd)
}

// runCmd executes cmd and feeds its messages back into the model until
// nothing is left to do
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 20 {
			t.Fatal("command chain did not settle")
		}
		switch msg := cmd().(type) {
		case nil, tea.QuitMsg:
			return m
		case tea.BatchMsg:
			for _, c := range msg {
				m = runCmd(t, m, c)
			}
			return m
		default:
			var next tea.Model
			next, cmd = m.Update(msg)
			m = next.(Model)
		}
	}
	return m
}

// placement lists the placement of the shown layout as "id@row.col/width"
func (f *editorFixture) placement() []string {
	var out []string
	for _, it := range f.model.items {
		out = append(out, fmt.Sprintf("%s@%d.%d/%d", it.ID, it.Row, it.Column, it.Width))
	}
	return out
}
