package internal

import (
	"context"
	"net/url"
)

// ChatService groups the messaging endpoints.
type ChatService struct {
	client *Client
}

// Chat returns the chat service.
func (c *Client) Chat() *ChatService {
	return &ChatService{client: c}
}

// Conversations lists the user's conversations, most recent first.
func (s *ChatService) Conversations(ctx context.Context) (Page[Conversation], error) {
	return getPage[Conversation](ctx, s.client, "/chat/conversations")
}

// Messages returns the messages of one conversation in chronological order.
func (s *ChatService) Messages(ctx context.Context, conversationID string) (Page[ChatMessage], error) {
	path := "/chat/conversations/" + url.PathEscape(conversationID) + "/messages"
	return getPage[ChatMessage](ctx, s.client, path)
}

// Send posts a message to a conversation.
func (s *ChatService) Send(ctx context.Context, conversationID, content string) (*ChatMessage, error) {
	var msg ChatMessage
	body := &ChatMessage{ConversationID: conversationID, Content: content}
	path := "/chat/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := s.client.Post(ctx, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkRead marks all messages of a conversation as read.
func (s *ChatService) MarkRead(ctx context.Context, conversationID string) error {
	path := "/chat/conversations/" + url.PathEscape(conversationID) + "/read"
	return s.client.Put(ctx, path, nil, nil)
}

// Unread returns the total unread-message count across conversations.
func (s *ChatService) Unread(ctx context.Context) (int, error) {
	var count UnreadCount
	if err := s.client.Get(ctx, "/chat/unread", &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}
