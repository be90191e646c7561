package app

import (
	"fmt"
	"strings"
)

// System prompts sent with the planning, content and AI-input calls.
const (
	planSystemPrompt = `You are a project scaffolding assistant. Given a description of a desired project, decide which directories and files it needs.
Respond with JSON only, no prose, in the form:
{"paths": ["relative/dir/or/file", ...], "files": ["relative/path/to/file", ...]}
Entries under "files" are always files. All paths must be relative; never use absolute paths or "..".`

	contentSystemPrompt = `You are a code generation assistant. Generate the complete content of exactly one file for a new project.
Respond with the raw file content only: no surrounding prose, no code fences.`

	aiInputSystemPrompt = `You fill in a single template placeholder. Respond with a short plain-text value only, no prose, no quotes.`
)

// BuildPlanUserPrompt builds the user prompt for the path-planning call.
// existingSummary may be empty.
func BuildPlanUserPrompt(description, existingSummary string) string {
	var b strings.Builder
	b.WriteString("Project description:\n")
	b.WriteString(description)
	b.WriteString("\n")
	if existingSummary != "" {
		b.WriteString("\n")
		b.WriteString(existingSummary)
		b.WriteString("\nDo not plan paths that duplicate existing ones unless the description asks for it.\n")
	}
	return b.String()
}

// BuildContentUserPrompt builds the user prompt for one per-file content
// call. The complete target list is included so the provider can keep
// filenames mutually consistent across files.
func BuildContentUserPrompt(description string, targetPaths []string, path string) string {
	var b strings.Builder
	b.WriteString("Project description:\n")
	b.WriteString(description)
	b.WriteString("\n\nAll files being generated for this project:\n")
	for _, p := range targetPaths {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	fmt.Fprintf(&b, "\nGenerate the content of this file: %s\n", path)
	return b.String()
}
