package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GoFmtHook formats staged Go files and re-stages them
type GoFmtHook struct{}

func (g *GoFmtHook) Name() string {
	return "gofmt"
}

func (g *GoFmtHook) Matches(file string) bool {
	return strings.HasSuffix(file, ".go") && !strings.HasPrefix(file, "_examples/")
}

// Run formats a single Go file using gofmt
func (g *GoFmtHook) Run(ctx context.Context, file string) error {
	cmd := exec.CommandContext(ctx, "gofmt", "-w", file)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}

	// Re-stage the formatted file
	cmd = exec.CommandContext(ctx, "git", "add", file)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}

	return nil
}
