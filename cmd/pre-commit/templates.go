package main

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thenoetrevino/reportgrid/internal/converters"
)

// TemplateHook rejects staged layout templates that would not import
type TemplateHook struct{}

func (t *TemplateHook) Name() string {
	return "layout templates"
}

// Matches picks HCL files anywhere and YAML or JSON files kept in a
// templates/ or testdata/ directory
func (t *TemplateHook) Matches(file string) bool {
	switch filepath.Ext(file) {
	case ".hcl":
		return true
	case ".yaml", ".yml", ".json":
		dirs := strings.Split(filepath.ToSlash(filepath.Dir(file)), "/")
		return slices.Contains(dirs, "templates") || slices.Contains(dirs, "testdata")
	}
	return false
}

func (t *TemplateHook) Run(_ context.Context, file string) error {
	_, err := converters.DecodeFile(file)
	return err
}
