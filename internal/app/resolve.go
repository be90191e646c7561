package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
	"github.com/tacogips/aiscaffold/internal/llm"
	"github.com/tacogips/aiscaffold/internal/template/placeholder"
)

// TokenAsker supplies values for scanned tokens, interactively or scripted.
type TokenAsker interface {
	// AskChoice resolves a named or anonymous choice token. Multiple picks
	// are returned pre-joined with commas.
	AskChoice(t placeholder.Token) (string, error)

	// AskRadio resolves a radio token to exactly one option.
	AskRadio(t placeholder.Token) (string, error)

	// AskSimple resolves one simple placeholder name to a value.
	AskSimple(name string) (string, error)
}

// ResolveTemplate turns a template into a fully resolved prompt string.
//
// Non-simple tokens are resolved first, in source order: choice and radio
// tokens through the asker, AI-input tokens through one completion call
// each (masked by the token default on failure). The choice fill runs
// before simple values are collected so that names are prompted against
// the choice-resolved text. The result contains no remaining token of any
// recognized syntax.
func ResolveTemplate(ctx context.Context, template string, asker TokenAsker, client Completer) (string, error) {
	debug.DebugSection("[app] Template resolution start")

	choices := placeholder.ChoiceTokens(template)
	selections := make([]string, 0, len(choices))
	for _, t := range choices {
		var value string
		var err error

		switch t.Kind {
		case placeholder.KindRadio:
			value, err = asker.AskRadio(t)
		case placeholder.KindAIInput:
			value = resolveAIInput(ctx, client, t)
		default:
			value, err = asker.AskChoice(t)
		}
		if err != nil {
			return "", NewResolveError(fmt.Sprintf("failed to resolve %s token", t.Kind), err)
		}
		selections = append(selections, value)
	}

	filled := placeholder.FillChoices(template, selections)

	names := placeholder.SimpleNames(filled)
	values := make(map[string]string, len(names))
	for _, name := range names {
		value, err := asker.AskSimple(name)
		if err != nil {
			return "", NewResolveError(fmt.Sprintf("failed to resolve placeholder %q", name), err)
		}
		values[name] = value
	}

	resolved := placeholder.FillValues(filled, values)
	debug.Debug("[app] ResolveTemplate: %d choice token(s), %d simple name(s) resolved", len(choices), len(names))
	return resolved, nil
}

// resolveAIInput resolves an AI-input token through one completion call.
// A failed call is masked by the token's declared default.
func resolveAIInput(ctx context.Context, client Completer, t placeholder.Token) string {
	if client == nil {
		return t.Default
	}

	text, err := client.Complete(ctx, llm.Request{
		SystemPrompt: aiInputSystemPrompt,
		UserPrompt:   t.Prompt,
	})
	if err != nil {
		debug.Debug("[app] resolveAIInput: completion failed, using default %q: %v", t.Default, err)
		return t.Default
	}
	return strings.TrimSpace(text)
}
