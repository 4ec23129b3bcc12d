// Package mocks provides gomock implementations of the companion ports for unit tests.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockKeyValueStore(ctrl)
//	store.EXPECT().Delete(gomock.Any(), ports.KeyUser).Return(errors.New("disk full"))
package mocks

// KeyValueStore backs every persisted key; mocked to inject storage failures.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=storage_mock.go github.com/tijaniyah/companion/internal/ports KeyValueStore

// Session collaborators: the remote auth port, the user snapshot and the local account directory.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_mock.go github.com/tijaniyah/companion/internal/ports AccountDirectory,AuthAPI,UserSnapshotStore

// Content endpoints consumed by the feature services.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=content_mock.go github.com/tijaniyah/companion/internal/ports ChatAPI,FeedAPI,JournalAPI
