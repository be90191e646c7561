package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
	"github.com/tacogips/aiscaffold/internal/generate"
	"github.com/tacogips/aiscaffold/internal/llm"
	"github.com/tacogips/aiscaffold/internal/plan"
)

// PathSelector presents a candidate plan and returns the chosen subset,
// in plan order.
type PathSelector interface {
	SelectPaths(items []plan.Item) ([]plan.Item, error)
}

// ScaffoldOptions configures the scaffold workflow.
type ScaffoldOptions struct {
	// Prompt is the resolved project description.
	Prompt string
	// OutputDir is the directory generated entries are written under.
	OutputDir string
	// Overwrite determines whether pre-existing files are replaced.
	Overwrite bool
	// SelectAll skips interactive selection and takes the whole plan.
	SelectAll bool
	// WorkspaceDir, ExcludePatterns and ListLimit configure the planning
	// context summary (see PlanOptions).
	WorkspaceDir    string
	ExcludePatterns []string
	ListLimit       int
}

// ScaffoldDeps are the collaborators the scaffold workflow drives.
type ScaffoldDeps struct {
	// Client performs the planning and per-file content calls.
	Client Completer
	// Selector picks the subset of the plan to materialize. Ignored when
	// SelectAll is set; required otherwise.
	Selector PathSelector
	// Writer is the filesystem surface.
	Writer generate.Writer
	// ConfirmOverwrite, if set, is consulted once when Overwrite is off and
	// selected files collide with existing ones. It receives the colliding
	// paths; returning true upgrades the run to overwrite mode, an error
	// aborts it. When unset, collisions are skipped silently.
	ConfirmOverwrite func(existing []string) (bool, error)
	// Progress, if set, is reported before each file generation.
	Progress func(path string, index, total int)
}

// ScaffoldResult summarizes one scaffold run.
type ScaffoldResult struct {
	// Plan is the full candidate plan, including fallback provenance.
	Plan *PlanResult
	// Selected is the subset that was materialized.
	Selected []plan.Item
	// DirsCreated are the directory entries created.
	DirsCreated []string
	// DirFailures are directory entries that could not be created.
	DirFailures []generate.Failure
	// Generation is the per-file outcome.
	Generation *generate.Result
}

// Scaffold runs the full flow: plan, select, materialize.
//
// Planning failures never abort the run (the fallback plan substitutes);
// selection and confirmation aborts do. Directory entries are created
// directly; file entries go through the sequential generation
// orchestrator. Overwrite confirmation happens only after selection,
// once it is known which selected files actually collide.
func Scaffold(ctx context.Context, opts ScaffoldOptions, deps ScaffoldDeps) (*ScaffoldResult, error) {
	if strings.TrimSpace(opts.Prompt) == "" {
		return nil, NewValidationError("project description is empty", nil)
	}
	if opts.OutputDir == "" {
		return nil, NewValidationError("output directory is empty", nil)
	}
	if deps.Client == nil {
		return nil, NewValidationError("no completion client configured", nil)
	}
	if deps.Writer == nil {
		return nil, NewValidationError("no filesystem writer configured", nil)
	}
	if !opts.SelectAll && deps.Selector == nil {
		return nil, NewValidationError("no path selector configured", nil)
	}

	planResult := PlanPaths(ctx, deps.Client, PlanOptions{
		Prompt:          opts.Prompt,
		WorkspaceDir:    opts.WorkspaceDir,
		ExcludePatterns: opts.ExcludePatterns,
		ListLimit:       opts.ListLimit,
	})

	selected := planResult.Items
	if !opts.SelectAll {
		var err error
		selected, err = deps.Selector.SelectPaths(planResult.Items)
		if err != nil {
			return nil, NewAppError(SelectionAborted, "path selection aborted", err)
		}
	}

	result := &ScaffoldResult{
		Plan:        planResult,
		Selected:    selected,
		DirsCreated: []string{},
		DirFailures: []generate.Failure{},
	}

	var filePaths []string
	for _, item := range selected {
		switch item.Kind {
		case plan.KindDirectory:
			target := filepath.Join(opts.OutputDir, filepath.FromSlash(item.Path))
			if err := deps.Writer.CreateDir(target); err != nil {
				debug.Debug("[app] Scaffold: directory %s failed: %v", item.Path, err)
				result.DirFailures = append(result.DirFailures, generate.Failure{Path: item.Path, Reason: err.Error()})
				continue
			}
			result.DirsCreated = append(result.DirsCreated, item.Path)
		case plan.KindFile:
			filePaths = append(filePaths, item.Path)
		}
	}

	overwrite := opts.Overwrite
	if !overwrite && deps.ConfirmOverwrite != nil {
		var existing []string
		for _, p := range filePaths {
			if deps.Writer.Exists(filepath.Join(opts.OutputDir, filepath.FromSlash(p))) {
				existing = append(existing, p)
			}
		}
		if len(existing) > 0 {
			answer, err := deps.ConfirmOverwrite(existing)
			if err != nil {
				return nil, NewAppError(SelectionAborted, "overwrite confirmation aborted", err)
			}
			overwrite = answer
		}
	}

	orchestrator := generate.NewOrchestrator(deps.Writer, ContentProvider(deps.Client))
	orchestrator.Progress = deps.Progress
	result.Generation = orchestrator.Generate(ctx, generate.Options{
		Prompt:      opts.Prompt,
		TargetPaths: filePaths,
		OutputDir:   opts.OutputDir,
		Overwrite:   overwrite,
	})

	return result, nil
}

// ContentProvider adapts a Completer into the orchestrator's per-file
// content callback.
func ContentProvider(client Completer) generate.ContentProvider {
	return func(ctx context.Context, prompt string, targetPaths []string, path string) (string, error) {
		text, err := client.Complete(ctx, llm.Request{
			SystemPrompt: contentSystemPrompt,
			UserPrompt:   BuildContentUserPrompt(prompt, targetPaths, path),
		})
		if err != nil {
			return "", err
		}
		return stripFence(text), nil
	}
}

// stripFence removes a single surrounding code fence from content, for
// providers that fence despite being told not to.
func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return text
	}

	body := strings.TrimSuffix(trimmed, "```")
	if idx := strings.Index(body, "\n"); idx != -1 {
		return strings.TrimPrefix(body[idx+1:], "\n")
	}
	return text
}
