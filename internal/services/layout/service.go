// Package layout applies grid edits to a report's stored layout.
//
// Every edit reads the committed layout, runs the pure grid engine over a
// copy, and writes the result back only if nobody else saved in between.
// The guards the engine leaves to its callers (row capacity, allowed
// widths) are enforced here.
package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/grid"
	"github.com/thenoetrevino/reportgrid/internal/models"
)

const (
	maxContentLength = 10000

	// saveAttempts bounds how often an edit is replayed after losing a
	// version race
	saveAttempts = 3
)

// IDGenerator returns a fresh container id
type IDGenerator func() string

// DefaultIDGenerator issues random UUIDs
func DefaultIDGenerator() string {
	return uuid.NewString()
}

// Service defines all layout operations on a report's grid
type Service interface {
	// Read operations
	GetLayout(ctx context.Context, reportID int) (*models.Layout, error)
	WidthOptions(ctx context.Context, reportID int, containerID string) ([]int, error)

	// Insertion; the new container's id is returned alongside the layout
	AddFirst(ctx context.Context, reportID int) (*models.Layout, string, error)
	InsertBefore(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error)
	InsertAfter(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error)
	InsertRowAbove(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error)
	InsertRowBelow(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error)

	// Editing
	Remove(ctx context.Context, reportID int, containerID string) (*models.Layout, error)
	Resize(ctx context.Context, reportID int, containerID string, width int) (*models.Layout, error)
	Move(ctx context.Context, req MoveRequest) (*models.Layout, error)
	SetContent(ctx context.Context, req SetContentRequest) (*models.Layout, error)
	ApplyTemplate(ctx context.Context, reportID int, containers []*models.Container) (*models.Layout, error)
}

// MoveRequest drags a container next to another one, possibly on another row
type MoveRequest struct {
	ReportID    int
	ContainerID string
	TargetID    string
	Placement   grid.Placement
}

// SetContentRequest changes what a container displays
type SetContentRequest struct {
	ReportID    int
	ContainerID string
	ContentType models.ContentType
	Content     string
}

// repository defines the data access methods needed by the layout service
type repository interface {
	GetLayout(ctx context.Context, reportID int) (*models.Layout, error)
	SaveLayout(ctx context.Context, reportID, expectedVersion int, containers []*models.Container) (int, error)
	UpdateContainerContent(ctx context.Context, reportID int, containerID string, contentType models.ContentType, content string) error
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
	logger      *slog.Logger
	newID       IDGenerator
}

// NewService creates a new layout service. eventClient may be nil; a nil
// newID falls back to DefaultIDGenerator.
func NewService(repo repository, eventClient events.EventPublisher, logger *slog.Logger, newID IDGenerator) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if newID == nil {
		newID = DefaultIDGenerator
	}
	return &service{
		repo:        repo,
		eventClient: eventClient,
		logger:      logger,
		newID:       newID,
	}
}

// editFunc computes a new placement from the committed one. Returning
// errUnchanged skips the save.
type editFunc func(items []grid.Item) ([]grid.Item, error)

var errUnchanged = errors.New("layout unchanged")

// GetLayout retrieves a report with its containers
func (s *service) GetLayout(ctx context.Context, reportID int) (*models.Layout, error) {
	if reportID <= 0 {
		return nil, ErrInvalidReportID
	}
	return s.repo.GetLayout(ctx, reportID)
}

// WidthOptions lists the widths a container may be resized to
func (s *service) WidthOptions(ctx context.Context, reportID int, containerID string) ([]int, error) {
	layout, err := s.GetLayout(ctx, reportID)
	if err != nil {
		return nil, err
	}
	options, err := grid.WidthOptions(layout.Items(), containerID)
	if err != nil {
		return nil, translate(err)
	}
	return options, nil
}

// AddFirst places a full-width container on an empty report
func (s *service) AddFirst(ctx context.Context, reportID int) (*models.Layout, string, error) {
	id := s.newID()
	layout, err := s.edit(ctx, reportID, "add_first", func(items []grid.Item) ([]grid.Item, error) {
		if len(items) > 0 {
			return nil, ErrLayoutNotEmpty
		}
		return grid.First(id), nil
	})
	return layout, id, err
}

// InsertBefore puts a new container to the left of targetID, taking the
// row's remaining width
func (s *service) InsertBefore(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error) {
	return s.insertBeside(ctx, reportID, targetID, "insert_before", grid.InsertBefore)
}

// InsertAfter puts a new container to the right of targetID, taking the
// row's remaining width
func (s *service) InsertAfter(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error) {
	return s.insertBeside(ctx, reportID, targetID, "insert_after", grid.InsertAfter)
}

func (s *service) insertBeside(
	ctx context.Context,
	reportID int,
	targetID, op string,
	insert func([]grid.Item, string, string) ([]grid.Item, error),
) (*models.Layout, string, error) {
	if targetID == "" {
		return nil, "", ErrEmptyContainerID
	}
	id := s.newID()
	layout, err := s.edit(ctx, reportID, op, func(items []grid.Item) ([]grid.Item, error) {
		target, ok := grid.Find(items, targetID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, targetID)
		}
		if !grid.CanInsert(items, target.Row) {
			return nil, fmt.Errorf("%w: row %d", ErrRowFull, target.Row)
		}
		return insert(items, targetID, id)
	})
	return layout, id, err
}

// InsertRowAbove opens a new half-width row directly above targetID's row
func (s *service) InsertRowAbove(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error) {
	return s.insertRow(ctx, reportID, targetID, "insert_row_above", grid.InsertRowAbove)
}

// InsertRowBelow opens a new half-width row directly below targetID's row
func (s *service) InsertRowBelow(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error) {
	return s.insertRow(ctx, reportID, targetID, "insert_row_below", grid.InsertRowBelow)
}

func (s *service) insertRow(
	ctx context.Context,
	reportID int,
	targetID, op string,
	insert func([]grid.Item, int, string) ([]grid.Item, error),
) (*models.Layout, string, error) {
	if targetID == "" {
		return nil, "", ErrEmptyContainerID
	}
	id := s.newID()
	layout, err := s.edit(ctx, reportID, op, func(items []grid.Item) ([]grid.Item, error) {
		target, ok := grid.Find(items, targetID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, targetID)
		}
		return insert(items, target.Row, id)
	})
	return layout, id, err
}

// Remove deletes a container. Its row is not compacted; removing an
// unknown id returns the layout unchanged.
func (s *service) Remove(ctx context.Context, reportID int, containerID string) (*models.Layout, error) {
	return s.edit(ctx, reportID, "remove", func(items []grid.Item) ([]grid.Item, error) {
		if _, ok := grid.Find(items, containerID); !ok {
			return nil, errUnchanged
		}
		return grid.Remove(items, containerID), nil
	})
}

// Resize sets a container's width to one of its WidthOptions
func (s *service) Resize(ctx context.Context, reportID int, containerID string, width int) (*models.Layout, error) {
	return s.edit(ctx, reportID, "resize", func(items []grid.Item) ([]grid.Item, error) {
		current, ok := grid.Find(items, containerID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, containerID)
		}
		if width == current.Width {
			return nil, errUnchanged
		}
		options, err := grid.WidthOptions(items, containerID)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(options, width) {
			return nil, fmt.Errorf("%w: %d (allowed %v)", ErrInvalidWidth, width, options)
		}
		return grid.Resize(items, containerID, width)
	})
}

// Move drags a container before or after a target container
func (s *service) Move(ctx context.Context, req MoveRequest) (*models.Layout, error) {
	if req.ContainerID == "" || req.TargetID == "" {
		return nil, ErrEmptyContainerID
	}
	return s.edit(ctx, req.ReportID, "move", func(items []grid.Item) ([]grid.Item, error) {
		moving, ok := grid.Find(items, req.ContainerID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, req.ContainerID)
		}
		target, ok := grid.Find(items, req.TargetID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, req.TargetID)
		}
		if target.Row != moving.Row && grid.RowSpan(items, target.Row)+moving.Width > grid.TotalColumns {
			return nil, fmt.Errorf("%w: row %d cannot take width %d", ErrRowFull, target.Row, moving.Width)
		}
		return grid.Move(items, req.ContainerID, req.TargetID, req.Placement)
	})
}

// SetContent changes a container's content without touching its placement
func (s *service) SetContent(ctx context.Context, req SetContentRequest) (*models.Layout, error) {
	if req.ReportID <= 0 {
		return nil, ErrInvalidReportID
	}
	if req.ContainerID == "" {
		return nil, ErrEmptyContainerID
	}
	if !req.ContentType.Valid() {
		return nil, fmt.Errorf("unknown content type %q", req.ContentType)
	}
	if utf8.RuneCountInString(req.Content) > maxContentLength {
		return nil, ErrContentTooLong
	}

	if err := s.repo.UpdateContainerContent(ctx, req.ReportID, req.ContainerID, req.ContentType, req.Content); err != nil {
		return nil, err
	}

	s.logger.Info("container content updated",
		"report_id", req.ReportID,
		"container_id", req.ContainerID,
		"content_type", req.ContentType)
	s.publish(events.Event{Type: events.EventReportChanged, ReportID: req.ReportID})
	return s.repo.GetLayout(ctx, req.ReportID)
}

// ApplyTemplate replaces a report's layout wholesale, e.g. from an
// imported file. The placement must pass grid.Validate.
func (s *service) ApplyTemplate(ctx context.Context, reportID int, containers []*models.Container) (*models.Layout, error) {
	items := make([]grid.Item, len(containers))
	for i, c := range containers {
		if !c.ContentType.Valid() {
			return nil, fmt.Errorf("%w: container %s: unknown content type %q", ErrInvalidLayout, c.ID, c.ContentType)
		}
		items[i] = c.GridItem()
	}
	if err := grid.Validate(items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	byID := make(map[string]*models.Container, len(containers))
	for _, c := range containers {
		byID[c.ID] = c
	}

	return s.save(ctx, reportID, "apply_template", func(*models.Layout) ([]*models.Container, error) {
		out := make([]*models.Container, 0, len(items))
		for _, it := range grid.Sort(items) {
			c := *byID[it.ID]
			c.ReportID = reportID
			out = append(out, &c)
		}
		return out, nil
	})
}

// edit runs fn over the committed placement and saves the result
func (s *service) edit(ctx context.Context, reportID int, op string, fn editFunc) (*models.Layout, error) {
	return s.save(ctx, reportID, op, func(current *models.Layout) ([]*models.Container, error) {
		items, err := fn(current.Items())
		if err != nil {
			return nil, err
		}
		return current.WithItems(items), nil
	})
}

// save reads the layout, builds its replacement and writes it back against
// the version it read. Losing a race to another writer replays the edit on
// the fresh layout.
func (s *service) save(
	ctx context.Context,
	reportID int,
	op string,
	build func(current *models.Layout) ([]*models.Container, error),
) (*models.Layout, error) {
	if reportID <= 0 {
		return nil, ErrInvalidReportID
	}

	var lastErr error
	for attempt := range saveAttempts {
		current, err := s.repo.GetLayout(ctx, reportID)
		if err != nil {
			return nil, err
		}

		containers, err := build(current)
		if errors.Is(err, errUnchanged) {
			return current, nil
		}
		if err != nil {
			return nil, translate(err)
		}

		version, err := s.repo.SaveLayout(ctx, reportID, current.Report.Version, containers)
		if errors.Is(err, ErrVersionConflict) {
			s.logger.Debug("layout version conflict, replaying edit",
				"report_id", reportID, "op", op, "attempt", attempt+1)
			lastErr = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to save layout: %w", err)
		}

		report := *current.Report
		report.Version = version
		updated := &models.Layout{Report: &report, Containers: containers}

		s.logger.Info("layout updated",
			"report_id", reportID,
			"op", op,
			"version", version,
			"containers", len(containers))
		s.publish(events.Event{Type: events.EventLayoutChanged, ReportID: reportID, Version: version})
		return updated, nil
	}
	return nil, lastErr
}

// translate maps grid engine errors onto the service's vocabulary
func translate(err error) error {
	if errors.Is(err, grid.ErrItemNotFound) {
		return fmt.Errorf("%w: %w", ErrContainerNotFound, err)
	}
	return err
}

func (s *service) publish(event events.Event) {
	if s.eventClient == nil {
		return
	}
	if err := events.PublishWithRetry(s.eventClient, event, 3); err != nil {
		s.logger.Warn("failed to send event", "report_id", event.ReportID, "error", err)
	}
}
