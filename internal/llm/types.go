package llm

// Request describes one completion call.
type Request struct {
	// SystemPrompt sets the assistant behavior for the call.
	SystemPrompt string
	// UserPrompt is the user-facing request text.
	UserPrompt string
	// JSONMode asks the provider to answer with a JSON object. Best
	// effort: the reply still goes through textual extraction downstream.
	JSONMode bool
}

// Wire types for the chat-completions endpoint.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
