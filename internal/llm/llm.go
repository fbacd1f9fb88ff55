package llm

import "context"

// Role identifies the author of a chat message. Order matters to the
// provider: the system message comes first.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation sent to the provider.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Response is the provider's answer. The service only ever reads the
// first choice; a response with no choices carries no usable answer.
type Response struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

// Completer is the single chokepoint for outbound language-model requests.
// Implementations perform exactly one synchronous request per call — no
// retry, no streaming.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (*Response, error)
}
