package placeholder

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// Regex patterns for the placeholder grammars.
//
//	{{name:opt1,opt2|default}}   named choice
//	{{opt1,opt2|default}}        anonymous choice (comma-separated, no colon)
//	{{radio|opt1,opt2|default}}  radio
//	{{ai|prompt|default}}        AI input
//	{{name}}                     simple
var (
	namedChoicePattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_-]*):([^{}|]+)(?:\|([^{}|]*))?\}\}`)
	anonChoicePattern  = regexp.MustCompile(`\{\{([^{}|:]*,[^{}|:]*)(?:\|([^{}|]*))?\}\}`)
	radioPattern       = regexp.MustCompile(`\{\{radio\|([^{}|]+)(?:\|([^{}|]*))?\}\}`)
	aiPattern          = regexp.MustCompile(`\{\{ai\|([^{}|]+)(?:\|([^{}|]*))?\}\}`)
	simplePattern      = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_-]*)\}\}`)
)

// Reserved simple names that belong to other grammars.
const (
	reservedRadio = "radio"
	reservedAI    = "ai"
)

// Scan finds all placeholder tokens in a template.
//
// Categories are scanned in precedence order (named choice, anonymous
// choice, radio, AI input, simple); a candidate whose span overlaps any
// already-accepted token is discarded, regardless of category. The result
// is ordered by first-occurrence offset across all accepted tokens.
// Scan has no side effects.
func Scan(template string) []Token {
	var accepted []Token

	accepted = scanNamedChoice(template, accepted)
	accepted = scanAnonymousChoice(template, accepted)
	accepted = scanRadio(template, accepted)
	accepted = scanAIInput(template, accepted)
	accepted = scanSimple(template, accepted)

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})

	debug.Debug("[placeholder] Scan: found %d token(s) in %d bytes", len(accepted), len(template))
	return accepted
}

// ChoiceTokens returns the non-simple tokens of a template in source order.
// These are the tokens that consume one selection each during FillChoices.
func ChoiceTokens(template string) []Token {
	var choices []Token
	for _, t := range Scan(template) {
		if t.IsChoice() {
			choices = append(choices, t)
		}
	}
	return choices
}

// SimpleNames returns the distinct simple placeholder names of a template,
// ordered by first occurrence.
func SimpleNames(template string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, t := range Scan(template) {
		if t.Kind != KindSimple {
			continue
		}
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		names = append(names, t.Name)
	}
	return names
}

func scanNamedChoice(template string, accepted []Token) []Token {
	for _, m := range namedChoicePattern.FindAllStringSubmatchIndex(template, -1) {
		if overlapsAccepted(accepted, m[0], m[1]) {
			continue
		}
		t := Token{
			Kind:    KindNamedChoice,
			Name:    template[m[2]:m[3]],
			Options: splitOptions(template[m[4]:m[5]]),
			Start:   m[0],
			RawText: template[m[0]:m[1]],
		}
		t.Default, t.HasDefault = optionalGroup(template, m, 3)
		accepted = append(accepted, t)
	}
	return accepted
}

func scanAnonymousChoice(template string, accepted []Token) []Token {
	for _, m := range anonChoicePattern.FindAllStringSubmatchIndex(template, -1) {
		if overlapsAccepted(accepted, m[0], m[1]) {
			continue
		}
		t := Token{
			Kind:    KindAnonymousChoice,
			Options: splitOptions(template[m[2]:m[3]]),
			Start:   m[0],
			RawText: template[m[0]:m[1]],
		}
		t.Default, t.HasDefault = optionalGroup(template, m, 2)
		accepted = append(accepted, t)
	}
	return accepted
}

func scanRadio(template string, accepted []Token) []Token {
	for _, m := range radioPattern.FindAllStringSubmatchIndex(template, -1) {
		if overlapsAccepted(accepted, m[0], m[1]) {
			continue
		}
		t := Token{
			Kind:    KindRadio,
			Options: splitOptions(template[m[2]:m[3]]),
			Start:   m[0],
			RawText: template[m[0]:m[1]],
		}
		t.Default, t.HasDefault = optionalGroup(template, m, 2)
		accepted = append(accepted, t)
	}
	return accepted
}

func scanAIInput(template string, accepted []Token) []Token {
	for _, m := range aiPattern.FindAllStringSubmatchIndex(template, -1) {
		if overlapsAccepted(accepted, m[0], m[1]) {
			continue
		}
		t := Token{
			Kind:    KindAIInput,
			Prompt:  strings.TrimSpace(template[m[2]:m[3]]),
			Start:   m[0],
			RawText: template[m[0]:m[1]],
		}
		t.Default, t.HasDefault = optionalGroup(template, m, 2)
		accepted = append(accepted, t)
	}
	return accepted
}

func scanSimple(template string, accepted []Token) []Token {
	for _, m := range simplePattern.FindAllStringSubmatchIndex(template, -1) {
		name := template[m[2]:m[3]]
		if name == reservedRadio || name == reservedAI {
			continue
		}
		if overlapsAccepted(accepted, m[0], m[1]) {
			continue
		}
		accepted = append(accepted, Token{
			Kind:    KindSimple,
			Name:    name,
			Start:   m[0],
			RawText: template[m[0]:m[1]],
		})
	}
	return accepted
}

// overlapsAccepted reports whether the [start, end) span overlaps any
// already-accepted token span.
func overlapsAccepted(accepted []Token, start, end int) bool {
	for _, t := range accepted {
		if start < t.End() && t.Start < end {
			return true
		}
	}
	return false
}

// optionalGroup extracts submatch group n, reporting whether it matched.
// An empty match is distinct from an absent one: {{a,b|}} declares an
// empty default, {{a,b}} declares none.
func optionalGroup(template string, m []int, n int) (string, bool) {
	lo, hi := m[2*n], m[2*n+1]
	if lo == -1 || hi == -1 {
		return "", false
	}
	return strings.TrimSpace(template[lo:hi]), true
}

// splitOptions splits a comma-separated option list, trimming each entry.
func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		options = append(options, strings.TrimSpace(p))
	}
	return options
}
