package app

import (
	"context"

	"github.com/tacogips/aiscaffold/internal/debug"
	"github.com/tacogips/aiscaffold/internal/llm"
	"github.com/tacogips/aiscaffold/internal/plan"
	"github.com/tacogips/aiscaffold/internal/workspace"
)

// Completer is the text-generation capability the workflows depend on.
// *llm.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// PlanOptions configures one path-planning request.
type PlanOptions struct {
	// Prompt is the resolved project description.
	Prompt string
	// WorkspaceDir, when set, is summarized into the planning context so
	// the model can avoid clobbering existing layout.
	WorkspaceDir string
	// ExcludePatterns are names excluded from the workspace summary.
	ExcludePatterns []string
	// ListLimit caps the workspace summary size.
	ListLimit int
}

// PlanResult is a built path plan plus provenance.
type PlanResult struct {
	// Items is the deduplicated, kind-tagged plan, in acceptance order.
	Items []plan.Item
	// Fallback reports that the provider call failed or yielded nothing
	// usable and the fixed fallback plan was substituted. The caller can
	// surface this; the plan itself stays usable either way.
	Fallback bool
}

// PlanPaths performs the single path-planning call and builds the plan.
//
// The call is single-shot with no retry. Any failure along the way —
// provider error, malformed response, or an empty build — substitutes the
// fixed fallback plan so downstream selection always has candidates, and
// marks the result as a fallback instead of surfacing an error.
func PlanPaths(ctx context.Context, client Completer, opts PlanOptions) *PlanResult {
	debug.DebugSection("[app] Path planning start")

	summary := ""
	if opts.WorkspaceDir != "" {
		paths, err := workspace.List(opts.WorkspaceDir, opts.ExcludePatterns, opts.ListLimit)
		if err != nil {
			debug.Debug("[app] PlanPaths: workspace summary unavailable: %v", err)
		} else {
			summary = workspace.Summary(paths)
		}
	}

	text, err := client.Complete(ctx, llm.Request{
		SystemPrompt: planSystemPrompt,
		UserPrompt:   BuildPlanUserPrompt(opts.Prompt, summary),
		JSONMode:     true,
	})
	if err != nil {
		debug.Debug("[app] PlanPaths: planning call failed, using fallback plan: %v", err)
		return &PlanResult{Items: FallbackPlan(), Fallback: true}
	}

	parsed, err := plan.Extract(text)
	if err != nil {
		debug.Debug("[app] PlanPaths: %v; using fallback plan", err)
		return &PlanResult{Items: FallbackPlan(), Fallback: true}
	}

	items := plan.Build(parsed)
	if len(items) == 0 {
		debug.Debug("[app] PlanPaths: response yielded no usable candidates, using fallback plan")
		return &PlanResult{Items: FallbackPlan(), Fallback: true}
	}

	debug.Debug("[app] PlanPaths: planned %d item(s)", len(items))
	return &PlanResult{Items: items}
}

// FallbackPlan returns the fixed plan substituted when planning fails.
func FallbackPlan() []plan.Item {
	return []plan.Item{
		{Path: "src", Kind: plan.KindDirectory},
		{Path: "docs", Kind: plan.KindDirectory},
		{Path: "README.md", Kind: plan.KindFile},
	}
}
