package placeholder

import (
	"strings"
	"testing"
)

// TestFillChoices tests choice-token substitution
func TestFillChoices(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		selections []string
		want       string
	}{
		{
			name:       "named and radio in order",
			template:   "Build with {{framework:react,vue|react}} and {{radio|npm,yarn|npm}}",
			selections: []string{"vue", "yarn"},
			want:       "Build with vue and yarn",
		},
		{
			name:       "multi-pick joined value passes through",
			template:   "Features: {{auth,billing,search|auth}}",
			selections: []string{"auth,search"},
			want:       "Features: auth,search",
		},
		{
			name:       "shortfall fills empty",
			template:   "{{a,b|a}} then {{radio|x,y|x}}",
			selections: []string{"b"},
			want:       "b then ",
		},
		{
			name:       "no selections fills all empty",
			template:   "{{a,b|a}}!",
			selections: nil,
			want:       "!",
		},
		{
			name:       "surplus selections ignored",
			template:   "{{a,b|a}}",
			selections: []string{"a", "extra"},
			want:       "a",
		},
		{
			name:       "simple tokens untouched",
			template:   "{{name}} picked {{a,b|a}}",
			selections: []string{"b"},
			want:       "{{name}} picked b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FillChoices(tt.template, tt.selections)
			if got != tt.want {
				t.Errorf("FillChoices() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFillValues tests simple-token substitution
func TestFillValues(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "all names provided",
			template: "Build {{project}} with {{tool}}",
			values:   map[string]string{"project": "demo", "tool": "vite"},
			want:     "Build demo with vite",
		},
		{
			name:     "repeated name fills every occurrence",
			template: "{{name}}-{{name}}",
			values:   map[string]string{"name": "x"},
			want:     "x-x",
		},
		{
			name:     "missing name fills empty",
			template: "Build {{project}} with {{tool}}",
			values:   map[string]string{"project": "demo"},
			want:     "Build demo with ",
		},
		{
			name:     "choice tokens untouched",
			template: "{{a,b|a}} {{name}}",
			values:   map[string]string{"name": "x"},
			want:     "{{a,b|a}} x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FillValues(tt.template, tt.values)
			if got != tt.want {
				t.Errorf("FillValues() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFullResolutionLeavesNoTokens runs both fill passes over a template
// exercising every token syntax and checks that nothing is left behind.
func TestFullResolutionLeavesNoTokens(t *testing.T) {
	template := "A {{fw:react,vue|react}} app named {{project}} using {{radio|npm,yarn|npm}} " +
		"with {{auth,search|auth}} and a {{ai|Describe the layout|grid}} layout for {{project}}."

	choices := ChoiceTokens(template)
	selections := make([]string, len(choices))
	for i, tok := range choices {
		if len(tok.Options) > 0 {
			selections[i] = tok.Options[0]
		} else {
			selections[i] = tok.Default
		}
	}
	filled := FillChoices(template, selections)

	values := make(map[string]string)
	for _, name := range SimpleNames(filled) {
		values[name] = "v"
	}
	resolved := FillValues(filled, values)

	if strings.Contains(resolved, "{{") || strings.Contains(resolved, "}}") {
		t.Errorf("resolved template still contains token delimiters: %q", resolved)
	}
}
