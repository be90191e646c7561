package plan

import (
	"encoding/json"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// response is the object form a planning model may answer with.
// Entries under "files" are always files; entries under "paths" are
// classified by their shape.
type response struct {
	Paths []string `json:"paths"`
	Files []string `json:"files"`
}

// Build merges the path candidates of a parsed planning response into a
// deduplicated, kind-tagged plan.
//
// The parsed value may be a bare array of strings or an object with
// optional "paths" and "files" arrays. Candidates from "paths" (or the
// bare array) are processed first, then "files". Each raw candidate is
// normalized; invalid candidates are dropped silently and never abort the
// build. Duplicates of an already-accepted normalized path are dropped,
// so the first classification wins even when a later "files" entry would
// force a different kind. Output preserves first-acceptance order.
func Build(parsed json.RawMessage) []Item {
	var resp response

	var bare []string
	if err := json.Unmarshal(parsed, &bare); err == nil {
		resp.Paths = bare
	} else if err := json.Unmarshal(parsed, &resp); err != nil {
		debug.Debug("[plan] Build: response is neither a string array nor a paths/files object")
		return nil
	}

	seen := make(map[string]struct{})
	items := make([]Item, 0, len(resp.Paths)+len(resp.Files))

	accept := func(raw string, forceFile bool) {
		normalized, err := Normalize(raw)
		if err != nil {
			debug.Debug("[plan] Build: dropping candidate: %v", err)
			return
		}
		if _, dup := seen[normalized]; dup {
			debug.Debug("[plan] Build: dropping duplicate %q", normalized)
			return
		}
		seen[normalized] = struct{}{}

		kind := Classify(normalized)
		if forceFile {
			kind = KindFile
		}
		items = append(items, Item{Path: normalized, Kind: kind})
	}

	for _, raw := range resp.Paths {
		accept(raw, false)
	}
	for _, raw := range resp.Files {
		accept(raw, true)
	}

	debug.Debug("[plan] Build: accepted %d of %d candidate(s)", len(items), len(resp.Paths)+len(resp.Files))
	return items
}
