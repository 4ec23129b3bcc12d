package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tijaniyah/companion/internal/domain/model"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	"github.com/tijaniyah/companion/internal/ports"
	"golang.org/x/sync/errgroup"
)

const overviewFeedSize = 5

// OverviewServiceOptions groups dependencies for OverviewService.
type OverviewServiceOptions struct {
	Feed    ports.FeedAPI
	Journal *JournalService
	Chat    ports.ChatAPI
	Logger  *slog.Logger
}

// OverviewService loads the home screen: the head of the feed, the journal and the
// conversation list, fetched concurrently.
type OverviewService struct {
	feed    ports.FeedAPI
	journal *JournalService
	chat    ports.ChatAPI
	logger  *slog.Logger
}

// Overview is the home screen content. A section that failed to load is empty and its
// displayable error is recorded in Errors under the section name.
type Overview struct {
	Posts         []model.Post
	Journal       JournalList
	Conversations []model.Conversation
	Errors        map[string]string
}

// Overview section names.
const (
	SectionFeed    = "feed"
	SectionJournal = "journal"
	SectionChat    = "chat"
)

// NewOverviewService constructs an OverviewService.
func NewOverviewService(opts OverviewServiceOptions) (*OverviewService, error) {
	if opts.Feed == nil || opts.Journal == nil || opts.Chat == nil {
		return nil, errors.New("overview service: Feed, Journal and Chat are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OverviewService{feed: opts.Feed, journal: opts.Journal, chat: opts.Chat, logger: logger}, nil
}

// Load fetches every section. Section failures are recorded, not returned; the error is
// non-nil only when ctx ends first.
func (s *OverviewService) Load(ctx context.Context) (Overview, error) {
	var (
		out     Overview
		feedErr error
		jrnErr  error
		chatErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.feed.ListPosts(gctx, model.ListPostsOptions{Limit: overviewFeedSize})
		out.Posts, feedErr = page.Items, err
		return nil
	})
	g.Go(func() error {
		out.Journal, jrnErr = s.journal.List(gctx)
		return nil
	})
	g.Go(func() error {
		out.Conversations, chatErr = s.chat.ListConversations(gctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Overview{}, err
	}

	for section, err := range map[string]error{SectionFeed: feedErr, SectionJournal: jrnErr, SectionChat: chatErr} {
		if err == nil {
			continue
		}
		if out.Errors == nil {
			out.Errors = make(map[string]string)
		}
		out.Errors[section] = apperrors.Message(err)
		s.logger.WarnContext(ctx, "overview section failed", "section", section, "error", err)
	}
	return out, nil
}
