// Package model defines the content types exchanged with the backend: community posts,
// journal entries and direct-message conversations.
package model

import "time"

// Post is a community feed entry.
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName,omitempty"`
	Content      string    `json:"content"`
	MediaURLs    []string  `json:"mediaUrls"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	LikedByMe    bool      `json:"likedByMe,omitempty"`
	Comments     []Comment `json:"comments,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Comment is a reply to a Post.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"mediaUrls"`
}

// CreateCommentRequest is the body of POST /posts/:id/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// PostPage is one page of the feed. NextCursor is empty on the last page.
type PostPage struct {
	Items      []Post `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// ListPostsOptions controls feed pagination.
type ListPostsOptions struct {
	Limit  int
	Cursor string
}
