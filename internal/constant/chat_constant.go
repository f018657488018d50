package constant

// Storage role vocabulary (chat_messages.role).
const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// Wire role vocabulary expected by the generative-language endpoint.
// Storage "assistant" maps to wire "model"; "user" passes through.
const (
	ModelTurnRoleUser  = "user"
	ModelTurnRoleModel = "model"
)

const (
	DefaultSessionTitle = "New Chat Session"

	// Session titles are derived from the first user turn, truncated.
	SessionTitleMaxRunes = 50
	SessionTitleEllipsis = "..."
)
