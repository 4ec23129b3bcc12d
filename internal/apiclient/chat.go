package apiclient

import (
	"context"
	"net/url"

	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/ports"
)

var _ ports.ChatAPI = (*Client)(nil)

func (c *Client) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	var convs []model.Conversation
	if err := c.get(ctx, "/chat/conversations", nil, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (c *Client) CreateConversation(ctx context.Context, req model.CreateConversationRequest) (model.Conversation, error) {
	var conv model.Conversation
	err := c.post(ctx, "/chat/conversations", req, &conv)
	return conv, err
}

func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	var msgs []model.Message
	if err := c.get(ctx, messagesPath(conversationID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID string, req model.SendMessageRequest) (model.Message, error) {
	var m model.Message
	err := c.post(ctx, messagesPath(conversationID), req, &m)
	return m, err
}

func messagesPath(conversationID string) string {
	return "/chat/conversations/" + url.PathEscape(conversationID) + "/messages"
}
