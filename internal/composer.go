package internal

import (
	"context"
	"fmt"
	"strings"
)

// Composer holds the draft of an outgoing chat message and sends it
// optimistically: the draft is cleared before the round trip completes and
// restored if the send fails, so a failed send never loses the user's text.
type Composer struct {
	chat           *ChatService
	conversationID string
	draft          string
}

// NewComposer creates a composer bound to one conversation.
func NewComposer(chat *ChatService, conversationID string) *Composer {
	return &Composer{chat: chat, conversationID: conversationID}
}

// SetDraft replaces the current draft text.
func (c *Composer) SetDraft(text string) {
	c.draft = text
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	return c.draft
}

// Send submits the draft. The draft is cleared immediately; on failure it is
// restored and the error returned.
func (c *Composer) Send(ctx context.Context) (*ChatMessage, error) {
	content := c.draft
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("nothing to send")
	}
	c.draft = ""

	msg, err := c.chat.Send(ctx, c.conversationID, content)
	if err != nil {
		c.draft = content
		return nil, err
	}
	return msg, nil
}
