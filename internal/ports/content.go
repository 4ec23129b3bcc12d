package ports

import (
	"context"

	"github.com/tijaniyah/companion/internal/domain/model"
)

// FeedAPI lists and mutates community posts.
type FeedAPI interface {
	ListPosts(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error)
	CreatePost(ctx context.Context, req model.CreatePostRequest) (model.Post, error)
	GetPost(ctx context.Context, id string) (model.Post, error)
	AddComment(ctx context.Context, postID string, req model.CreateCommentRequest) (model.Comment, error)
	LikePost(ctx context.Context, postID string) error
	UnlikePost(ctx context.Context, postID string) error
}

// JournalAPI manages the signed-in user's journal entries.
type JournalAPI interface {
	ListJournal(ctx context.Context) ([]model.JournalEntry, error)
	GetJournalEntry(ctx context.Context, id string) (model.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, req model.CreateJournalEntryRequest) (model.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, id string, req model.UpdateJournalEntryRequest) (model.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, id string) error
}

// ChatAPI manages direct-message conversations.
type ChatAPI interface {
	ListConversations(ctx context.Context) ([]model.Conversation, error)
	CreateConversation(ctx context.Context, req model.CreateConversationRequest) (model.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)
	SendMessage(ctx context.Context, conversationID string, req model.SendMessageRequest) (model.Message, error)
}
