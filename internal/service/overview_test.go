package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tijaniyah/companion/internal/data"
	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestOverviewService_LoadRecordsSectionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeedAPI(ctrl)
	chat := mocks.NewMockChatAPI(ctrl)
	jrnAPI := mocks.NewMockJournalAPI(ctrl)

	journal, err := NewJournalService(JournalServiceOptions{API: jrnAPI, Cache: data.NewJSONRepo(data.NewMemoryKVStore())})
	require.NoError(t, err)
	svc, err := NewOverviewService(OverviewServiceOptions{Feed: feed, Journal: journal, Chat: chat})
	require.NoError(t, err)

	feed.EXPECT().ListPosts(gomock.Any(), model.ListPostsOptions{Limit: overviewFeedSize}).
		Return(model.PostPage{Items: []model.Post{{ID: "p1"}}}, nil)
	jrnAPI.EXPECT().ListJournal(gomock.Any()).Return([]model.JournalEntry{{ID: "j1"}}, nil)
	chat.EXPECT().ListConversations(gomock.Any()).Return(nil, errBackendDown)

	ov, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ov.Posts, 1)
	assert.Len(t, ov.Journal.Entries, 1)
	assert.Empty(t, ov.Conversations)
	assert.Equal(t, map[string]string{SectionChat: "network request failed"}, ov.Errors)
}

func TestOverviewService_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeedAPI(ctrl)
	chat := mocks.NewMockChatAPI(ctrl)
	jrnAPI := mocks.NewMockJournalAPI(ctrl)
	journal, err := NewJournalService(JournalServiceOptions{API: jrnAPI, Cache: data.NewJSONRepo(data.NewMemoryKVStore())})
	require.NoError(t, err)
	svc, err := NewOverviewService(OverviewServiceOptions{Feed: feed, Journal: journal, Chat: chat})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	feed.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(model.PostPage{}, ctx.Err()).AnyTimes()
	jrnAPI.EXPECT().ListJournal(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()
	chat.EXPECT().ListConversations(gomock.Any()).Return(nil, ctx.Err()).AnyTimes()

	_, err = svc.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewOverviewService_RequiresDeps(t *testing.T) {
	_, err := NewOverviewService(OverviewServiceOptions{})
	assert.Error(t, err)
}
