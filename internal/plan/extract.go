package plan

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// fencedBlockPattern matches the first ```lang fenced block in a response.
var fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z0-9]*[ \t]*\n(.*?)```")

// Extract pulls a JSON value out of raw model text.
//
// Strategies are tried in order, first success wins:
//  1. parse the trimmed whole text directly
//  2. locate a fenced block and parse its trimmed interior, then the
//     interior substring between its first "{" and last "}"
//  3. parse the whole-text substring between the first "{" and last "}"
//
// This is purely textual recovery from a model that ignored "respond with
// JSON only" instructions; no strategy retries the network call. If every
// strategy fails, Extract returns a MalformedResponse error.
func Extract(raw string) (json.RawMessage, error) {
	if v, ok := tryParse(strings.TrimSpace(raw)); ok {
		debug.Debug("[plan] Extract: whole text parsed directly")
		return v, nil
	}

	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil {
		interior := strings.TrimSpace(m[1])
		if v, ok := tryParse(interior); ok {
			debug.Debug("[plan] Extract: fenced block interior parsed")
			return v, nil
		}
		if v, ok := tryParseBraced(interior); ok {
			debug.Debug("[plan] Extract: braced substring of fenced block parsed")
			return v, nil
		}
	}

	if v, ok := tryParseBraced(raw); ok {
		debug.Debug("[plan] Extract: braced substring of whole text parsed")
		return v, nil
	}

	return nil, newError(MalformedResponse, "no JSON value found in response", excerpt(raw, 120))
}

// tryParse returns s as a raw JSON value if it is valid JSON.
func tryParse(s string) (json.RawMessage, bool) {
	if s == "" || !json.Valid([]byte(s)) {
		return nil, false
	}
	return json.RawMessage(s), true
}

// tryParseBraced parses the substring between the first "{" and last "}" of s.
func tryParseBraced(s string) (json.RawMessage, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil, false
	}
	return tryParse(strings.TrimSpace(s[start : end+1]))
}

// excerpt shortens s for error messages.
func excerpt(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
