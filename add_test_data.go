//go:build ignore
// +build ignore

// Helper script to add demo reports to the configured database
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"

	"github.com/thenoetrevino/reportgrid/internal/app"
	"github.com/thenoetrevino/reportgrid/internal/config"
	"github.com/thenoetrevino/reportgrid/internal/database"
	"github.com/thenoetrevino/reportgrid/internal/models"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	a := app.New(db)

	report, err := a.ReportService.CreateReport(ctx, reportservice.CreateReportRequest{
		Title:       "Weekly sales",
		Description: "Revenue and pipeline for the **current week**.",
	})
	if err != nil {
		log.Fatalf("Failed to create report: %v", err)
	}
	log.Printf("Created report %d: %s", report.ID, report.Title)

	// Build the grid the way an editor would: one full-width heading,
	// a row of three KPIs and a chart row underneath
	layout, header, err := a.LayoutService.AddFirst(ctx, report.ID)
	if err != nil {
		log.Fatalf("Failed to add first container: %v", err)
	}
	set(ctx, a, report.ID, header, models.ContentHeading, "Week 42")

	_, kpiRow, err := a.LayoutService.InsertRowBelow(ctx, report.ID, header)
	if err != nil {
		log.Fatalf("Failed to insert KPI row: %v", err)
	}
	if _, err := a.LayoutService.Resize(ctx, report.ID, kpiRow, 4); err != nil {
		log.Fatalf("Failed to resize: %v", err)
	}
	set(ctx, a, report.ID, kpiRow, models.ContentKPI, "Revenue")

	prev := kpiRow
	for _, label := range []string{"Deals won", "Pipeline"} {
		_, id, err := a.LayoutService.InsertAfter(ctx, report.ID, prev)
		if err != nil {
			log.Fatalf("Failed to insert KPI: %v", err)
		}
		set(ctx, a, report.ID, id, models.ContentKPI, label)
		prev = id
	}

	_, chart, err := a.LayoutService.InsertRowBelow(ctx, report.ID, kpiRow)
	if err != nil {
		log.Fatalf("Failed to insert chart row: %v", err)
	}
	layout = set(ctx, a, report.ID, chart, models.ContentTimelineChart, "Revenue by day")

	log.Printf("Report %d now has %d containers (version %d)", report.ID, len(layout.Containers), layout.Report.Version)
	log.Println("Test data added successfully!")
}

func set(ctx context.Context, a *app.App, reportID int, id string, ct models.ContentType, content string) *models.Layout {
	layout, err := a.LayoutService.SetContent(ctx, layoutservice.SetContentRequest{
		ReportID:    reportID,
		ContainerID: id,
		ContentType: ct,
		Content:     content,
	})
	if err != nil {
		log.Fatalf("Failed to set content of %s: %v", id, err)
	}
	return layout
}
