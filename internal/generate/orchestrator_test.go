package generate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// fakeWriter is an in-memory Writer for orchestrator tests.
type fakeWriter struct {
	files      map[string]string
	dirs       map[string]bool
	failWrites map[string]bool
	failDirs   map[string]bool
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{
		files:      make(map[string]string),
		dirs:       make(map[string]bool),
		failWrites: make(map[string]bool),
		failDirs:   make(map[string]bool),
	}
}

func (w *fakeWriter) WriteFile(path string, content []byte) error {
	if w.failWrites[path] {
		return errors.New("disk full")
	}
	w.files[path] = string(content)
	return nil
}

func (w *fakeWriter) CreateDir(path string) error {
	if w.failDirs[path] {
		return errors.New("permission denied")
	}
	w.dirs[path] = true
	return nil
}

func (w *fakeWriter) Exists(path string) bool {
	_, ok := w.files[path]
	return ok
}

func staticProvider(content string) ContentProvider {
	return func(ctx context.Context, prompt string, targetPaths []string, path string) (string, error) {
		return content, nil
	}
}

// TestGenerateCreates tests the plain creation path
func TestGenerateCreates(t *testing.T) {
	writer := newFakeWriter()
	o := NewOrchestrator(writer, staticProvider("package main\n"))

	result := o.Generate(context.Background(), Options{
		Prompt:      "a go cli",
		TargetPaths: []string{"cmd/main.go", "README.md"},
		OutputDir:   "out",
	})

	if len(result.Created) != 2 {
		t.Fatalf("created = %v, want 2 entries", result.Created)
	}
	if len(result.Overwritten)+len(result.Skipped)+len(result.Failed) != 0 {
		t.Errorf("unexpected non-created outcomes: %+v", result)
	}

	wantPath := filepath.Join("out", "cmd", "main.go")
	if got := writer.files[wantPath]; got != "package main\n" {
		t.Errorf("content at %s = %q", wantPath, got)
	}
	if !writer.dirs[filepath.Join("out", "cmd")] {
		t.Errorf("parent directory %s was not created", filepath.Join("out", "cmd"))
	}
}

// TestGenerateOverwritePolicy tests skip vs overwrite for existing files
func TestGenerateOverwritePolicy(t *testing.T) {
	tests := []struct {
		name            string
		overwrite       bool
		wantSkipped     int
		wantOverwritten int
		wantContent     string
	}{
		{
			name:        "existing file skipped by default",
			overwrite:   false,
			wantSkipped: 1,
			wantContent: "old",
		},
		{
			name:            "existing file replaced with overwrite",
			overwrite:       true,
			wantOverwritten: 1,
			wantContent:     "new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := newFakeWriter()
			existing := filepath.Join("out", "README.md")
			writer.files[existing] = "old"

			o := NewOrchestrator(writer, staticProvider("new"))
			result := o.Generate(context.Background(), Options{
				Prompt:      "p",
				TargetPaths: []string{"README.md"},
				OutputDir:   "out",
				Overwrite:   tt.overwrite,
			})

			if len(result.Skipped) != tt.wantSkipped {
				t.Errorf("skipped = %v, want %d", result.Skipped, tt.wantSkipped)
			}
			if len(result.Overwritten) != tt.wantOverwritten {
				t.Errorf("overwritten = %v, want %d", result.Overwritten, tt.wantOverwritten)
			}
			if got := writer.files[existing]; got != tt.wantContent {
				t.Errorf("content = %q, want %q", got, tt.wantContent)
			}
		})
	}
}

// TestGenerateProviderFailureFallsBack verifies a failed content request
// still produces a file with fallback content.
func TestGenerateProviderFailureFallsBack(t *testing.T) {
	writer := newFakeWriter()
	provider := func(ctx context.Context, prompt string, targetPaths []string, path string) (string, error) {
		if path == "src/app.js" {
			return "", errors.New("model unavailable")
		}
		return "ok", nil
	}

	o := NewOrchestrator(writer, provider)
	result := o.Generate(context.Background(), Options{
		Prompt:      "a web app",
		TargetPaths: []string{"src/app.js", "src/index.js"},
		OutputDir:   "out",
	})

	if len(result.Created) != 2 {
		t.Fatalf("created = %v, want both paths", result.Created)
	}
	if len(result.Failed) != 0 {
		t.Errorf("failed = %v, want none", result.Failed)
	}

	got := writer.files[filepath.Join("out", "src", "app.js")]
	if !strings.Contains(got, "src/app.js") {
		t.Errorf("fallback content does not name the path: %q", got)
	}
	if !strings.Contains(got, "a web app") {
		t.Errorf("fallback content does not carry the prompt excerpt: %q", got)
	}
}

// TestGenerateContentAndWriteFailure verifies a masked content failure
// surfaces in the failure reason when the write also fails.
func TestGenerateContentAndWriteFailure(t *testing.T) {
	writer := newFakeWriter()
	writer.failWrites[filepath.Join("out", "a.txt")] = true

	provider := func(ctx context.Context, prompt string, targetPaths []string, path string) (string, error) {
		return "", errors.New("model unavailable")
	}

	o := NewOrchestrator(writer, provider)
	result := o.Generate(context.Background(), Options{
		Prompt:      "p",
		TargetPaths: []string{"a.txt"},
		OutputDir:   "out",
	})

	if len(result.Failed) != 1 {
		t.Fatalf("failed = %+v, want one entry", result.Failed)
	}
	reason := result.Failed[0].Reason
	if !strings.Contains(reason, "content request failed") {
		t.Errorf("reason does not mention the content failure: %q", reason)
	}
	if !strings.Contains(reason, "disk full") {
		t.Errorf("reason does not mention the write failure: %q", reason)
	}
}

// TestGenerateWriteFailureContinues verifies one failed write does not stop
// the rest of the batch.
func TestGenerateWriteFailureContinues(t *testing.T) {
	writer := newFakeWriter()
	writer.failWrites[filepath.Join("out", "a.txt")] = true

	o := NewOrchestrator(writer, staticProvider("x"))
	result := o.Generate(context.Background(), Options{
		Prompt:      "p",
		TargetPaths: []string{"a.txt", "b.txt"},
		OutputDir:   "out",
	})

	if len(result.Failed) != 1 || result.Failed[0].Path != "a.txt" {
		t.Fatalf("failed = %+v, want a.txt", result.Failed)
	}
	if result.Failed[0].Reason == "" {
		t.Errorf("failure has no reason")
	}
	if len(result.Created) != 1 || result.Created[0] != "b.txt" {
		t.Errorf("created = %v, want [b.txt]", result.Created)
	}
}

// TestGenerateDirFailure verifies a parent-directory failure lands the path
// in the failed bucket without a write attempt.
func TestGenerateDirFailure(t *testing.T) {
	writer := newFakeWriter()
	writer.failDirs[filepath.Join("out", "locked")] = true

	o := NewOrchestrator(writer, staticProvider("x"))
	result := o.Generate(context.Background(), Options{
		Prompt:      "p",
		TargetPaths: []string{"locked/file.txt", "open/file.txt"},
		OutputDir:   "out",
	})

	if len(result.Failed) != 1 || result.Failed[0].Path != "locked/file.txt" {
		t.Fatalf("failed = %+v", result.Failed)
	}
	if _, ok := writer.files[filepath.Join("out", "locked", "file.txt")]; ok {
		t.Errorf("file was written despite directory failure")
	}
	if len(result.Created) != 1 {
		t.Errorf("created = %v, want the second path", result.Created)
	}
}

// TestGenerateBucketsPartition verifies every target path lands in exactly
// one result bucket.
func TestGenerateBucketsPartition(t *testing.T) {
	writer := newFakeWriter()
	writer.files[filepath.Join("out", "skip.txt")] = "old"
	writer.failWrites[filepath.Join("out", "fail.txt")] = true

	o := NewOrchestrator(writer, staticProvider("x"))
	paths := []string{"new.txt", "skip.txt", "fail.txt"}
	result := o.Generate(context.Background(), Options{
		Prompt:      "p",
		TargetPaths: paths,
		OutputDir:   "out",
	})

	seen := make(map[string]int)
	for _, p := range result.Created {
		seen[p]++
	}
	for _, p := range result.Overwritten {
		seen[p]++
	}
	for _, p := range result.Skipped {
		seen[p]++
	}
	for _, f := range result.Failed {
		seen[f.Path]++
	}

	for _, p := range paths {
		if seen[p] != 1 {
			t.Errorf("path %q appears in %d buckets, want 1", p, seen[p])
		}
	}
}

// TestGenerateProgress verifies the progress callback fires per path in order
func TestGenerateProgress(t *testing.T) {
	writer := newFakeWriter()
	o := NewOrchestrator(writer, staticProvider("x"))

	var calls []string
	o.Progress = func(path string, index, total int) {
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
		calls = append(calls, path)
	}

	o.Generate(context.Background(), Options{
		Prompt:      "p",
		TargetPaths: []string{"a.txt", "b.txt"},
		OutputDir:   "out",
	})

	if len(calls) != 2 || calls[0] != "a.txt" || calls[1] != "b.txt" {
		t.Errorf("progress calls = %v", calls)
	}
}

// TestFallbackContent tests the deterministic substitute content
func TestFallbackContent(t *testing.T) {
	long := strings.Repeat("abcdefghij", 20)
	got := FallbackContent("src/app.js", long+"\nsecond line")

	if !strings.HasPrefix(got, "// src/app.js\n") {
		t.Errorf("fallback does not start with the path header: %q", got)
	}
	if strings.Contains(got[len("// src/app.js\n"):], "\nsecond") {
		t.Errorf("prompt newlines were not flattened: %q", got)
	}
	if !strings.Contains(got, "...") {
		t.Errorf("long prompt was not truncated: %q", got)
	}
}
