package model

import "time"

// JournalEntry is a private journal entry owned by the signed-in user.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateJournalEntryRequest is the body of POST /journal.
type CreateJournalEntryRequest struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
	Mood    string   `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdateJournalEntryRequest is the body of PATCH /journal/:id. Nil fields are not sent.
type UpdateJournalEntryRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Mood    *string   `json:"mood,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}
