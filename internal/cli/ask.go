package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tacogips/aiscaffold/internal/plan"
	"github.com/tacogips/aiscaffold/internal/template/placeholder"
)

// surveyAsker resolves placeholder tokens interactively.
// Implements app.TokenAsker.
type surveyAsker struct{}

// NewTokenAsker returns the interactive token asker.
func NewTokenAsker() *surveyAsker {
	return &surveyAsker{}
}

// AskChoice prompts a multi-select over the token's options.
// Picks are returned pre-joined with commas.
func (a *surveyAsker) AskChoice(t placeholder.Token) (string, error) {
	message := "Choose options"
	if t.Name != "" {
		message = fmt.Sprintf("Choose %s", t.Name)
	}

	prompt := &survey.MultiSelect{
		Message: message,
		Options: t.Options,
		Default: defaultPicks(t),
	}

	var picks []string
	if err := survey.AskOne(prompt, &picks); err != nil {
		return "", err
	}
	return strings.Join(picks, ","), nil
}

// AskRadio prompts a single select over the token's options.
func (a *surveyAsker) AskRadio(t placeholder.Token) (string, error) {
	prompt := &survey.Select{
		Message: "Choose one",
		Options: t.Options,
	}
	if t.HasDefault && containsOption(t.Options, t.Default) {
		prompt.Default = t.Default
	}

	var pick string
	if err := survey.AskOne(prompt, &pick); err != nil {
		return "", err
	}
	return pick, nil
}

// AskSimple prompts for a single named value.
func (a *surveyAsker) AskSimple(name string) (string, error) {
	prompt := &survey.Input{
		Message: name,
	}

	var value string
	if err := survey.AskOne(prompt, &value); err != nil {
		return "", err
	}
	return value, nil
}

// defaultPicks pre-checks the declared default(s) of a choice token.
// A default may itself be a comma-joined multi-pick.
func defaultPicks(t placeholder.Token) []string {
	if !t.HasDefault || t.Default == "" {
		return nil
	}
	var picks []string
	for _, d := range strings.Split(t.Default, ",") {
		d = strings.TrimSpace(d)
		if containsOption(t.Options, d) {
			picks = append(picks, d)
		}
	}
	return picks
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// surveySelector presents a candidate plan for subset selection.
// Implements app.PathSelector.
type surveySelector struct{}

// NewPathSelector returns the interactive plan selector.
func NewPathSelector() *surveySelector {
	return &surveySelector{}
}

// SelectPaths presents the plan with every entry pre-selected and returns
// the chosen subset in plan order.
func (s *surveySelector) SelectPaths(items []plan.Item) ([]plan.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	labels := make([]string, 0, len(items))
	byLabel := make(map[string]plan.Item, len(items))
	for _, item := range items {
		label := item.Path
		if item.Kind == plan.KindDirectory {
			label += "/"
		}
		labels = append(labels, label)
		byLabel[label] = item
	}

	prompt := &survey.MultiSelect{
		Message:  "Select entries to generate",
		Options:  labels,
		Default:  labels,
		PageSize: 15,
	}

	var picked []string
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}

	pickedSet := make(map[string]struct{}, len(picked))
	for _, label := range picked {
		pickedSet[label] = struct{}{}
	}

	// Preserve plan order regardless of survey's answer order.
	selected := make([]plan.Item, 0, len(picked))
	for _, label := range labels {
		if _, ok := pickedSet[label]; ok {
			selected = append(selected, byLabel[label])
		}
	}
	return selected, nil
}

// confirmOverwrite asks whether the colliding files may be replaced.
func confirmOverwrite(existing []string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%d selected file(s) already exist. Overwrite them?", len(existing)),
		Default: false,
	}

	var answer bool
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
