package database

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/thenoetrevino/reportgrid/internal/models"
)

type RepositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo *Repository
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewRepository(setupTestDB(s.T()))
}

func TestRepositorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) createReport(title string) *models.Report {
	report, err := s.repo.CreateReport(s.ctx, title, "")
	s.Require().NoError(err)
	return report
}

// ============================================================================
// REPORTS
// ============================================================================

func (s *RepositorySuite) TestCreateReport() {
	report, err := s.repo.CreateReport(s.ctx, "Quarterly", "Q3 numbers")
	s.Require().NoError(err)

	s.Positive(report.ID)
	s.Equal("Quarterly", report.Title)
	s.Equal("Q3 numbers", report.Description)
	s.Equal(0, report.Version)
	s.False(report.CreatedAt.IsZero())
}

func (s *RepositorySuite) TestGetReportNotFound() {
	_, err := s.repo.GetReportByID(s.ctx, 999)
	s.ErrorIs(err, ErrReportNotFound)
}

func (s *RepositorySuite) TestGetAllReportsOrdered() {
	s.createReport("first")
	s.createReport("second")

	reports, err := s.repo.GetAllReports(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(reports, 2)
	s.Equal("first", reports[0].Title)
	s.Equal("second", reports[1].Title)
}

func (s *RepositorySuite) TestUpdateReport() {
	report := s.createReport("draft")

	s.Require().NoError(s.repo.UpdateReport(s.ctx, report.ID, "final", "done"))

	got, err := s.repo.GetReportByID(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Equal("final", got.Title)
	s.Equal("done", got.Description)

	s.ErrorIs(s.repo.UpdateReport(s.ctx, 999, "x", ""), ErrReportNotFound)
}

func (s *RepositorySuite) TestDeleteReportCascadesContainers() {
	report := s.createReport("doomed")
	_, err := s.repo.SaveLayout(s.ctx, report.ID, 0, testContainers(report.ID))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeleteReport(s.ctx, report.ID))

	containers, err := s.repo.GetContainersByReport(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Empty(containers)
	s.ErrorIs(s.repo.DeleteReport(s.ctx, report.ID), ErrReportNotFound)
}

// ============================================================================
// LAYOUTS
// ============================================================================

func (s *RepositorySuite) TestSaveAndGetLayout() {
	report := s.createReport("layout")

	version, err := s.repo.SaveLayout(s.ctx, report.ID, 0, testContainers(report.ID))
	s.Require().NoError(err)
	s.Equal(1, version)

	layout, err := s.repo.GetLayout(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Equal(1, layout.Report.Version)
	s.Require().Len(layout.Containers, 3)

	s.Equal("a", layout.Containers[0].ID)
	s.Equal(models.ContentHeading, layout.Containers[0].ContentType)
	s.Equal("Sales", layout.Containers[0].Content)
	s.Equal("c", layout.Containers[2].ID)
	s.Equal(2, layout.Containers[2].Row)
	// Missing content type falls back to text
	s.Equal(models.ContentText, layout.Containers[2].ContentType)
}

func (s *RepositorySuite) TestSaveLayoutReplacesContainers() {
	report := s.createReport("replace")
	_, err := s.repo.SaveLayout(s.ctx, report.ID, 0, testContainers(report.ID))
	s.Require().NoError(err)

	version, err := s.repo.SaveLayout(s.ctx, report.ID, 1, []*models.Container{
		{ID: "z", Row: 1, Column: 1, Width: 12},
	})
	s.Require().NoError(err)
	s.Equal(2, version)

	containers, err := s.repo.GetContainersByReport(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Require().Len(containers, 1)
	s.Equal("z", containers[0].ID)
}

func (s *RepositorySuite) TestSaveLayoutVersionConflict() {
	report := s.createReport("conflict")
	_, err := s.repo.SaveLayout(s.ctx, report.ID, 0, testContainers(report.ID))
	s.Require().NoError(err)

	_, err = s.repo.SaveLayout(s.ctx, report.ID, 0, nil)
	s.ErrorIs(err, ErrVersionConflict)

	// The rejected write left the layout alone
	containers, err := s.repo.GetContainersByReport(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Len(containers, 3)
}

func (s *RepositorySuite) TestSaveLayoutMissingReport() {
	_, err := s.repo.SaveLayout(s.ctx, 42, 0, nil)
	s.ErrorIs(err, ErrReportNotFound)
}

func (s *RepositorySuite) TestContainerIDsScopedPerReport() {
	first := s.createReport("one")
	second := s.createReport("two")

	_, err := s.repo.SaveLayout(s.ctx, first.ID, 0, testContainers(first.ID))
	s.Require().NoError(err)
	_, err = s.repo.SaveLayout(s.ctx, second.ID, 0, testContainers(second.ID))
	s.Require().NoError(err)

	containers, err := s.repo.GetContainersByReport(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Len(containers, 3)
}

func (s *RepositorySuite) TestUpdateContainerContent() {
	report := s.createReport("content")
	_, err := s.repo.SaveLayout(s.ctx, report.ID, 0, testContainers(report.ID))
	s.Require().NoError(err)

	err = s.repo.UpdateContainerContent(s.ctx, report.ID, "c", models.ContentURL, "https://example.com")
	s.Require().NoError(err)

	layout, err := s.repo.GetLayout(s.ctx, report.ID)
	s.Require().NoError(err)
	c := layout.Find("c")
	s.Require().NotNil(c)
	s.Equal(models.ContentURL, c.ContentType)
	s.Equal("https://example.com", c.Content)
	// Content edits are not layout edits
	s.Equal(1, layout.Report.Version)

	err = s.repo.UpdateContainerContent(s.ctx, report.ID, "missing", models.ContentText, "")
	s.ErrorIs(err, ErrContainerNotFound)
}

func TestLayoutPersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	db, path := setupTestDBFile(t)
	repo := NewRepository(db)
	ctx := context.Background()

	report, err := repo.CreateReport(ctx, "durable", "")
	require.NoError(t, err)
	_, err = repo.SaveLayout(ctx, report.ID, 0, testContainers(report.ID))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	layout, err := NewRepository(db).GetLayout(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "durable", layout.Report.Title)
	assert.Len(t, layout.Containers, 3)
}

func TestPragmasApplyToEveryConnection(t *testing.T) {
	t.Parallel()
	db, _ := setupTestDBFile(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	// Force the pool to open connections beyond the first one
	db.SetMaxOpenConns(3)
	conns := make([]*sql.Conn, 0, 3)
	for range 3 {
		conn, err := db.Conn(ctx)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	for i, conn := range conns {
		var foreignKeys, busyTimeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&busyTimeout))
		assert.Equal(t, 1, foreignKeys, "connection %d foreign_keys", i)
		assert.Equal(t, 5000, busyTimeout, "connection %d busy_timeout", i)
	}
}

func TestDeleteCascadesOnReplacedConnection(t *testing.T) {
	t.Parallel()
	db, _ := setupTestDBFile(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)
	ctx := context.Background()

	report, err := repo.CreateReport(ctx, "cascade", "")
	require.NoError(t, err)
	_, err = repo.SaveLayout(ctx, report.ID, 0, testContainers(report.ID))
	require.NoError(t, err)

	// Drop the idle connection so the delete runs on a fresh one
	db.SetMaxIdleConns(0)
	db.SetMaxIdleConns(1)

	require.NoError(t, repo.DeleteReport(ctx, report.ID))

	var remaining int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM containers WHERE report_id = ?", report.ID).Scan(&remaining))
	assert.Zero(t, remaining)
}

func TestConcurrentSaveLayoutOneWins(t *testing.T) {
	t.Parallel()
	db, _ := setupTestDBFile(t)
	defer func() { _ = db.Close() }()
	repo := NewRepository(db)
	ctx := context.Background()

	report, err := repo.CreateReport(ctx, "race", "")
	require.NoError(t, err)

	const writers = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.SaveLayout(ctx, report.ID, 0, testContainers(report.ID))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrVersionConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, conflicts)
}
