// Package conversation holds the in-memory turn history fed back to the
// language model for continuity. The history is scoped to one session and
// never persisted; the durable transcript lives in chat_messages.
package conversation

import "sync"

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one role-tagged fragment of the model context.
type Turn struct {
	Role Role
	Text string
}

// Context accumulates turns in strict call order. It never reorders,
// drops, or caps entries; any windowing for prompt assembly happens
// downstream in the model client.
type Context struct {
	mu    sync.Mutex
	turns []Turn
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) AppendUserTurn(text string) {
	c.append(Turn{Role: RoleUser, Text: text})
}

func (c *Context) AppendModelTurn(text string) {
	c.append(Turn{Role: RoleModel, Text: text})
}

func (c *Context) append(t Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, t)
}

// Reset empties the history. Called whenever the active session changes.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
}

func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// Snapshot returns a copy of the full history in insertion order.
func (c *Context) Snapshot() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]Turn, len(c.turns))
	copy(snapshot, c.turns)
	return snapshot
}
