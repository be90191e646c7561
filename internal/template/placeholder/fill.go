package placeholder

import (
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// FillChoices replaces every non-simple token of a template with the
// corresponding entry of selections, left to right. selections must be
// ordered the same way as ChoiceTokens returns the tokens. If fewer
// selections are supplied than there are tokens, the shortfall is replaced
// with the empty string, not with the token's own declared default.
//
// A single selection may itself be a pre-joined comma-separated string
// representing multiple picks for a choice or radio token.
func FillChoices(template string, selections []string) string {
	var b strings.Builder
	last := 0
	next := 0
	for _, t := range Scan(template) {
		if !t.IsChoice() {
			continue
		}
		b.WriteString(template[last:t.Start])
		if next < len(selections) {
			b.WriteString(selections[next])
		}
		next++
		last = t.End()
	}
	b.WriteString(template[last:])

	if next > len(selections) {
		debug.Debug("[placeholder] FillChoices: %d token(s) had no selection, replaced with empty string", next-len(selections))
	}
	return b.String()
}

// FillValues replaces every occurrence of each simple token {{name}},
// including repeats of the same name, with values[name]. Names missing
// from the map are replaced with the empty string. Non-simple tokens are
// left untouched.
func FillValues(template string, values map[string]string) string {
	var b strings.Builder
	last := 0
	for _, t := range Scan(template) {
		if t.Kind != KindSimple {
			continue
		}
		b.WriteString(template[last:t.Start])
		b.WriteString(values[t.Name])
		last = t.End()
	}
	b.WriteString(template[last:])
	return b.String()
}
