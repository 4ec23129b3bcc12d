package model

import "time"

// Conversation is a direct-message thread.
type Conversation struct {
	ID             string    `json:"id"`
	Title          string    `json:"title,omitempty"`
	ParticipantIDs []string  `json:"participantIds"`
	LastMessage    *Message  `json:"lastMessage,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Message is a single chat message.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateConversationRequest is the body of POST /chat/conversations.
type CreateConversationRequest struct {
	ParticipantIDs []string `json:"participantIds"`
	Title          string   `json:"title,omitempty"`
}

// SendMessageRequest is the body of POST /chat/conversations/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content"`
}
