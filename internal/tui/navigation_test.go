package tui

import (
	"testing"

	"github.com/thenoetrevino/reportgrid/internal/grid"
)

func TestNextWidth(t *testing.T) {
	options := []int{3, 4, 5, 6}

	tests := []struct {
		name    string
		current int
		dir     int
		want    int
		wantOK  bool
	}{
		{"grow", 4, 1, 5, true},
		{"shrink", 4, -1, 3, true},
		{"grow at max", 6, 1, 0, false},
		{"shrink at min", 3, -1, 0, false},
		{"grow from outside range", 1, 1, 3, true},
		{"shrink from wider than allowed", 12, -1, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextWidth(options, tt.current, tt.dir)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("nextWidth(%d, %d) = %d, %v; want %d, %v", tt.current, tt.dir, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := nextWidth(nil, 4, 1); ok {
		t.Error("nextWidth() with no options should fail")
	}
}

func TestMoveTarget(t *testing.T) {
	items := []grid.Item{
		{ID: "a", Row: 1, Column: 1, Width: 4},
		{ID: "b", Row: 1, Column: 2, Width: 4},
		{ID: "c", Row: 2, Column: 1, Width: 4},
	}

	tests := []struct {
		name          string
		cursor        string
		dir           int
		wantTarget    string
		wantPlacement grid.Placement
		wantOK        bool
	}{
		{"right within row", "a", 1, "b", grid.After, true},
		{"left within row", "b", -1, "a", grid.Before, true},
		{"right into next row", "b", 1, "c", grid.Before, true},
		{"left into previous row", "c", -1, "b", grid.After, true},
		{"left at start", "a", -1, "", grid.Before, false},
		{"right at end", "c", 1, "", grid.Before, false},
		{"unknown", "zz", 1, "", grid.Before, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, placement, ok := moveTarget(items, tt.cursor, tt.dir)
			if target != tt.wantTarget || placement != tt.wantPlacement || ok != tt.wantOK {
				t.Errorf("moveTarget(%q, %d) = %q, %v, %v; want %q, %v, %v",
					tt.cursor, tt.dir, target, placement, ok, tt.wantTarget, tt.wantPlacement, tt.wantOK)
			}
		})
	}
}

func TestRowJump_SkipsEmptyRows(t *testing.T) {
	items := []grid.Item{
		{ID: "a", Row: 1, Column: 1, Width: 4},
		{ID: "b", Row: 1, Column: 2, Width: 4},
		{ID: "c", Row: 3, Column: 1, Width: 12},
	}

	if got := rowJump(items, "b", 1); got != "c" {
		t.Errorf("rowJump(b, down) = %q, want c", got)
	}
	if got := rowJump(items, "c", -1); got != "a" {
		t.Errorf("rowJump(c, up) = %q, want a", got)
	}
	if got := rowJump(items, "c", 1); got != "" {
		t.Errorf("rowJump(c, down) = %q, want none", got)
	}
}
