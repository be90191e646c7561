package placeholder

// TokenKind identifies which placeholder syntax a scanned token uses.
type TokenKind int

const (
	// KindSimple represents {{name}}
	KindSimple TokenKind = iota
	// KindNamedChoice represents {{name:opt1,opt2|default}}
	KindNamedChoice
	// KindAnonymousChoice represents {{opt1,opt2|default}}
	KindAnonymousChoice
	// KindRadio represents {{radio|opt1,opt2|default}}
	KindRadio
	// KindAIInput represents {{ai|prompt|default}}
	KindAIInput
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindNamedChoice:
		return "named-choice"
	case KindAnonymousChoice:
		return "anonymous-choice"
	case KindRadio:
		return "radio"
	case KindAIInput:
		return "ai-input"
	default:
		return "unknown"
	}
}

// Token represents a matched placeholder in a template.
type Token struct {
	// Kind is the placeholder syntax.
	Kind TokenKind
	// Name is the placeholder name (simple and named-choice tokens only).
	Name string
	// Options holds the selectable options (choice and radio tokens only).
	Options []string
	// Prompt is the free-text generation prompt (AI-input tokens only).
	Prompt string
	// Default is the declared default value, if any.
	Default string
	// HasDefault reports whether a trailing |default segment was present.
	HasDefault bool
	// Start is the starting byte index of the token in the source template.
	Start int
	// RawText is the original matched text.
	RawText string
}

// End returns the ending byte index of the token in the source template (exclusive).
func (t Token) End() int {
	return t.Start + len(t.RawText)
}

// IsChoice reports whether the token is resolved by a caller-supplied
// selection rather than by name lookup. Everything except simple tokens
// is selection-resolved, including AI-input tokens.
func (t Token) IsChoice() bool {
	return t.Kind != KindSimple
}
