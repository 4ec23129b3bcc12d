package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tijaniyah/companion/internal/data"
	"github.com/tijaniyah/companion/internal/domain/model"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	"github.com/tijaniyah/companion/internal/mocks"
	"go.uber.org/mock/gomock"
)

var errBackendDown = apperrors.Wrap(errors.New("dial tcp"), apperrors.ErrCodeTransport, "network request failed")

func newJournalService(t *testing.T) (*JournalService, *mocks.MockJournalAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJournalAPI(ctrl)
	svc, err := NewJournalService(JournalServiceOptions{API: api, Cache: data.NewJSONRepo(data.NewMemoryKVStore())})
	require.NoError(t, err)
	return svc, api
}

func TestJournalService_ListFallsBackToCache(t *testing.T) {
	svc, api := newJournalService(t)
	ctx := context.Background()
	entries := []model.JournalEntry{{ID: "j1", Content: "Alhamdulillah"}, {ID: "j2", Content: "Dhikr"}}

	gomock.InOrder(
		api.EXPECT().ListJournal(gomock.Any()).Return(entries, nil),
		api.EXPECT().ListJournal(gomock.Any()).Return(nil, errBackendDown),
	)

	fresh, err := svc.List(ctx)
	require.NoError(t, err)
	assert.False(t, fresh.Cached)
	assert.Equal(t, entries, fresh.Entries)

	stale, err := svc.List(ctx)
	require.NoError(t, err)
	assert.True(t, stale.Cached)
	assert.Equal(t, entries, stale.Entries)
}

func TestJournalService_ListWithoutCacheReturnsError(t *testing.T) {
	svc, api := newJournalService(t)
	api.EXPECT().ListJournal(gomock.Any()).Return(nil, errBackendDown)

	_, err := svc.List(context.Background())

	assert.True(t, apperrors.IsTransport(err))
}

func TestJournalService_WritesRefreshCache(t *testing.T) {
	svc, api := newJournalService(t)
	ctx := context.Background()
	title := "Isha"

	api.EXPECT().ListJournal(gomock.Any()).Return([]model.JournalEntry{{ID: "j1"}}, nil)
	api.EXPECT().CreateJournalEntry(gomock.Any(), model.CreateJournalEntryRequest{Content: "new"}).
		Return(model.JournalEntry{ID: "j2", Content: "new"}, nil)
	api.EXPECT().UpdateJournalEntry(gomock.Any(), "j1", gomock.Any()).
		Return(model.JournalEntry{ID: "j1", Title: title}, nil)
	api.EXPECT().DeleteJournalEntry(gomock.Any(), "j2").Return(nil)
	api.EXPECT().ListJournal(gomock.Any()).Return(nil, errBackendDown)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.CreateJournalEntryRequest{Content: "new"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "j1", model.UpdateJournalEntryRequest{Title: &title})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "j2"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.True(t, got.Cached)
	assert.Equal(t, []model.JournalEntry{{ID: "j1", Title: title}}, got.Entries)
}

func TestJournalService_FailedWriteLeavesCache(t *testing.T) {
	svc, api := newJournalService(t)
	ctx := context.Background()

	api.EXPECT().ListJournal(gomock.Any()).Return([]model.JournalEntry{{ID: "j1"}}, nil)
	api.EXPECT().DeleteJournalEntry(gomock.Any(), "j1").Return(errBackendDown)
	api.EXPECT().ListJournal(gomock.Any()).Return(nil, errBackendDown)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Error(t, svc.Delete(ctx, "j1"))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 1)
}
