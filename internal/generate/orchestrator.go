package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// fallbackExcerptLen bounds the prompt excerpt embedded in fallback content.
const fallbackExcerptLen = 160

// ContentProvider produces the content for a single target file.
// It receives the full resolved prompt, the complete list of target paths
// (so related files can stay mutually consistent), and the path under
// generation.
type ContentProvider func(ctx context.Context, prompt string, targetPaths []string, path string) (string, error)

// Options configures one generation batch.
type Options struct {
	// Prompt is the resolved prompt describing the project.
	Prompt string

	// TargetPaths are the relative file paths to generate, in order.
	TargetPaths []string

	// OutputDir is the directory paths are written under.
	OutputDir string

	// Overwrite determines whether pre-existing files are replaced.
	// If false, existing files are skipped.
	Overwrite bool
}

// Failure records a path that could not be written and why.
type Failure struct {
	// Path is the relative target path.
	Path string
	// Reason is the underlying write error.
	Reason string
}

// Result accumulates the outcome of a generation batch. Every target path
// lands in exactly one of the four buckets.
type Result struct {
	// Created are paths written that did not previously exist.
	Created []string
	// Overwritten are pre-existing paths that were replaced.
	Overwritten []string
	// Skipped are pre-existing paths left untouched (overwrite disabled).
	Skipped []string
	// Failed are paths whose write failed.
	Failed []Failure
}

// Orchestrator drives a sequential, partial-failure-tolerant generation
// pass: one content request and one write in flight at a time, because the
// provider endpoint and the progress surface are shared, order-sensitive
// resources, and sequential processing bounds provider usage.
type Orchestrator struct {
	writer   Writer
	provider ContentProvider
	// Progress, if set, is called before each path is processed.
	Progress func(path string, index, total int)
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(writer Writer, provider ContentProvider) *Orchestrator {
	return &Orchestrator{
		writer:   writer,
		provider: provider,
	}
}

// Generate processes every target path strictly sequentially.
//
// Per path: ensure the parent directory exists, check existence, honor the
// overwrite policy, request content, and write. A failed content request
// is masked with deterministic fallback content and the write is still
// attempted, so a file is produced unless the write itself fails. A
// failure on one path never prevents processing of subsequent paths; once
// started, the batch runs to completion over all target paths.
func (o *Orchestrator) Generate(ctx context.Context, opts Options) *Result {
	debug.DebugSection("[generate] Generation batch start")
	debug.DebugValue("[generate] Target paths", len(opts.TargetPaths))
	debug.DebugValue("[generate] Output dir", opts.OutputDir)
	debug.DebugValue("[generate] Overwrite", opts.Overwrite)

	result := &Result{
		Created:     []string{},
		Overwritten: []string{},
		Skipped:     []string{},
		Failed:      []Failure{},
	}

	total := len(opts.TargetPaths)
	for i, path := range opts.TargetPaths {
		if o.Progress != nil {
			o.Progress(path, i, total)
		}

		outputPath := filepath.Join(opts.OutputDir, filepath.FromSlash(path))

		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := o.writer.CreateDir(dir); err != nil {
				debug.Debug("[generate] Parent directory failed for %s: %v", path, err)
				result.Failed = append(result.Failed, Failure{Path: path, Reason: err.Error()})
				continue
			}
		}

		exists := o.writer.Exists(outputPath)
		if exists && !opts.Overwrite {
			debug.Debug("[generate] Skipping existing file: %s", path)
			result.Skipped = append(result.Skipped, path)
			continue
		}

		content, err := o.provider(ctx, opts.Prompt, opts.TargetPaths, path)
		var contentErr *GenerateError
		if err != nil {
			// Availability over correctness: mask the provider failure with
			// placeholder content and still attempt the write.
			contentErr = newGenerateError(ContentFailed, "content request failed", path, err)
			debug.Debug("[generate] %v, using fallback content", contentErr)
			content = FallbackContent(path, opts.Prompt)
		}

		if err := o.writer.WriteFile(outputPath, []byte(content)); err != nil {
			debug.Debug("[generate] Write failed for %s: %v", path, err)
			reason := err.Error()
			if contentErr != nil {
				// The masked content failure becomes visible only here,
				// alongside the write failure.
				reason = fmt.Sprintf("%v; %v", contentErr, err)
			}
			result.Failed = append(result.Failed, Failure{Path: path, Reason: reason})
			continue
		}

		if exists {
			result.Overwritten = append(result.Overwritten, path)
		} else {
			result.Created = append(result.Created, path)
		}
	}

	debug.Debug("[generate] Batch complete: created=%d, overwritten=%d, skipped=%d, failed=%d",
		len(result.Created), len(result.Overwritten), len(result.Skipped), len(result.Failed))
	return result
}

// FallbackContent builds the deterministic substitute written when a
// content request fails: a comment header naming the path and a truncated
// excerpt of the prompt.
func FallbackContent(path, prompt string) string {
	excerpt := strings.TrimSpace(prompt)
	if len(excerpt) > fallbackExcerptLen {
		excerpt = excerpt[:fallbackExcerptLen] + "..."
	}
	excerpt = strings.ReplaceAll(excerpt, "\n", " ")
	return fmt.Sprintf("// %s\n// Placeholder content: generation request failed.\n// Request excerpt: %s\n", path, excerpt)
}
