// Command pre-commit formats staged Go files and validates staged layout
// templates. Install with: go build -o .git/hooks/pre-commit ./cmd/pre-commit
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ANSI color codes for output
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

// Hook is one pre-commit step over the staged files it cares about
type Hook interface {
	Name() string
	Matches(file string) bool
	Run(ctx context.Context, file string) error
}

// HookResult holds the result of a hook run
type HookResult struct {
	Name  string
	Files int
	Error error
}

// stagedFiles lists added, copied and modified files in the index
func stagedFiles(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}

	var files []string
	for _, file := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if file != "" {
			files = append(files, file)
		}
	}
	return files, nil
}

// runHook runs a hook over every staged file it matches
func runHook(ctx context.Context, hook Hook, staged []string) HookResult {
	result := HookResult{Name: hook.Name()}

	var failures []string
	for _, file := range staged {
		if !hook.Matches(file) {
			continue
		}
		if err := hook.Run(ctx, file); err != nil {
			failures = append(failures, fmt.Sprintf("  %s: %v", file, err))
			continue
		}
		result.Files++
	}

	if len(failures) > 0 {
		result.Error = fmt.Errorf("%d file(s) failed:\n%s", len(failures), strings.Join(failures, "\n"))
	}
	return result
}

func main() {
	ctx := context.Background()

	staged, err := stagedFiles(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s✗ %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	hooks := []Hook{
		&GoFmtHook{},
		&TemplateHook{},
	}

	var (
		mu      sync.Mutex
		results []HookResult
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, hook := range hooks {
		g.Go(func() error {
			result := runHook(gctx, hook, staged)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	var hasError bool
	for _, result := range results {
		switch {
		case result.Error != nil:
			fmt.Fprintf(os.Stderr, "%s✗ %s failed:%s\n%v\n", colorRed, result.Name, colorReset, result.Error)
			hasError = true
		case result.Files > 0:
			fmt.Printf("%s✓ %s:%s %d file(s)\n", colorGreen, result.Name, colorReset, result.Files)
		}
	}

	if hasError {
		os.Exit(1)
	}
}
